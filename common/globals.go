package common

// LaitVersion is the current lait version as a string.
const LaitVersion string = "0.1.0"

// LaitModuleFileName is the name for lait project files.
const LaitModuleFileName string = "lait-mod.toml"

// LaitFileExt is the file extension for a lait source file.
const LaitFileExt string = ".lait"
