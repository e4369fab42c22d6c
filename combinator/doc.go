// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package combinator is a small library of conveniences built on top of
// package pipe: Map, Filter, Take, and Drop as conduits; Fold and
// ConsumeAll as sinks; Peek as a lookahead that leaves input undisturbed;
// and ChunkedSource/ByteSink for streaming raw bytes through an
// io.Reader/io.Writer a buffer at a time. None of it is part of the core
// step machine — every function here is defined entirely in terms of
// pipe's exported API (primitives such as Await, Yield, LeftoverP, IdP
// and Bind, and, in ChunkedSource and ByteSink, PipeM and HaveOutput
// steps built directly) and could live outside the module.
package combinator
