// Package spy renders the sparsity pattern of a matrix as a scatter plot:
// one marker per stored non-zero cell, column on the X axis, row on the Y
// axis with row 0 at the top (the conventional "spy plot" orientation).
//
// Use Plot to obtain a *plot.Plot for further styling, or SavePNG to write
// an image straight to disk.
package spy
