// Package edpdf collects numerical utilities for turning electron-diffraction
// imaging data into pair-distribution-function (PDF) signals — chunked
// iteration over large lazily-evaluated scan arrays, per-pixel reduced
// intensity transforms, and atomic scattering-factor curve synthesis.
//
// 🚀 What is edpdf?
//
//	A small, focused library that brings together:
//		• Lazy frames: walk a chunked 4-D (or 3-D) scan one chunk at a time,
//		  applying an arbitrary per-frame function without ever holding the
//		  full dataset in memory
//		• Reduced intensity: normalization, masking and the standard damping
//		  windows (exponential, Lorch, updated Lorch, low-q error function)
//		• Scattering curves: closed-form atomic scattering factors (Lobato
//		  and International Tables parameterizations) fitted per scan pixel
//
// ✨ Why choose edpdf?
//
//   - Memory-bounded – peak residency is one chunk plus the output image
//   - Deterministic – single pass, row-major order, no hidden randomness
//   - Pure Go – gonum for the linear algebra, zstd for chunk storage
//   - Composable – per-frame callables are plain functions, easy to extend
//
// Everything is organized under three subpackages:
//
//	lazyframe/ — chunked arrays, window mapping, frame-apply driver, chunk store
//	reduced/   — per-pixel reduced-intensity transforms and damping windows
//	scatter/   — element scattering-factor tables and per-pixel curve synthesis
//
// Quick ASCII sketch of a chunked scan:
//
//	    ┌────┬────┐      each cell is one chunk of scan positions;
//	    │ 0,0│ 0,1│      every position holds a 2-D detector frame.
//	    ├────┼────┤      lazyframe materializes one cell at a time and
//	    │ 1,0│ 1,1│      maps your function over every frame inside it.
//	    └────┴────┘
//
// Dive into the package docs for full examples.
//
//	go get github.com/katalvlaran/edpdf
package edpdf
