package naming

import "path/filepath"

// OutputExt is the extension of every file written by a run. Outputs are
// always PNG regardless of the source format.
const OutputExt = "png"

// OutputName returns the file name written for p: same name and role, with
// the extension replaced by ext.
//
//	{map1, albedo, tga}, "png" -> map1_albedo.png
//	{map9_abc, -, tga},  "png" -> map9_abc.png
func OutputName(p ParsedName, ext string) string {
	p.Ext = ext
	return Format(p)
}

// GetOutputPath joins outputDir with the PNG output name for p.
func GetOutputPath(p ParsedName, outputDir string) string {
	return filepath.Join(outputDir, OutputName(p, OutputExt))
}
