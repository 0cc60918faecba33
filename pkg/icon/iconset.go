// Package icon converts a source image into a macOS .icns file by staging an
// .iconset directory with sips and assembling it with iconutil.
package icon

// IconsetDirName is the staging subdirectory name. iconutil only accepts
// directories with the .iconset extension.
const IconsetDirName = "AppIcon.iconset"

// Entry is one required image in an iconset.
type Entry struct {
	Pixels int    // edge length of the square image
	Name   string // filename inside the .iconset directory
}

// Entries lists the ten images iconutil expects, in the order they are
// produced. Each point size appears at 1x and 2x.
var Entries = []Entry{
	{Pixels: 16, Name: "icon_16x16.png"},
	{Pixels: 32, Name: "icon_16x16@2x.png"},
	{Pixels: 32, Name: "icon_32x32.png"},
	{Pixels: 64, Name: "icon_32x32@2x.png"},
	{Pixels: 128, Name: "icon_128x128.png"},
	{Pixels: 256, Name: "icon_128x128@2x.png"},
	{Pixels: 256, Name: "icon_256x256.png"},
	{Pixels: 512, Name: "icon_256x256@2x.png"},
	{Pixels: 512, Name: "icon_512x512.png"},
	{Pixels: 1024, Name: "icon_512x512@2x.png"},
}

// MaxPixels is the largest edge length in Entries.
const MaxPixels = 1024
