// Package audiofile loads and stores the audio the reverb command line tool
// renders.
//
// Decoding covers WAV and AIFF through go-audio, MP3 through go-mp3 and
// Ogg Vorbis through oggvorbis. Encoding writes integer PCM WAV only.
// Samples are held as interleaved float64 values in [-1, 1].
package audiofile
