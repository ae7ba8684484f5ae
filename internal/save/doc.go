package save

// Package save writes a fetched image to the output directory as JPEG.
