// Package viz renders integration results and Dalitz-plot views in the
// terminal.
//
//   - [Progress]: Bubble Tea model tracking a running integration
//   - [Canvas]: Braille pixel canvas used by [DalitzPlot]
//   - [RenderMatrix]: styled table of a normalization integral
//   - [PlotLineshape]: ASCII chart of |T(m²)| along one axis
//
// # Key Bindings
//
// While a [Progress] view is active, q or ctrl+c cancels the integration
// and returns control to the caller.
package viz
