/*
Package chroma is a library of generic color types and the conversions between
them.

Every color model is a small struct of typed channels, bounded, free or
angular, parametrized over float32 or float64. Generic algorithms in the color
package operate on any model through capability interfaces. The colorspace
package derives the RGB to CIE XYZ transform of an RGB color space from the
chromaticities of its primaries and its white point, and the encoding package
keeps encoded (gamma curved) values apart from linear light at the type level.
*/
package chroma
