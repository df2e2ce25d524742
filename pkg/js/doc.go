// Package js represents client-side commands and serializes them into
// script text. It is the emission side of the rendering pipeline: the
// normalizer in pkg/htmlnorm produces structured event commands, and this
// package turns them (plus any caller-built commands) into calls against
// the lift client runtime, ready to inline into a page or ship in an
// asynchronous update.
//
// Commands compose as an ordered sequence with a no-op identity, so
// command lists produced by independent components merge uniformly.
package js
