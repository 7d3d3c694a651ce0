// Package boards provides loading and caching of maze board files.
//
// Boards are plain text files (.txt) in a single directory, one maze per
// file, using the board alphabet: X wall, space floor, G goal, T Theseus
// start, M Minotaur start. Every board is validated through the engine
// parser before it is served, so callers only ever see boards that produce
// a playable Game.
//
// The Manager caches validated board text, exposes a default board
// (classic.txt when present, else the first valid file, else a built-in
// maze), and can save new boards back to disk. It is safe for concurrent
// use.
package boards
