package imaging

import (
	"image"

	"github.com/ironsheep/blend-modes-mcp/internal/blend"
)

// BlendFiles loads the base and overlay images through the cache, applies
// the named mode at the given opacity, and renders the result back to
// 8-bit form. The mode name goes through blend.ParseMode, so spelling
// variants and the "add" alias are accepted. The resolved mode is
// returned alongside the rendered image for reporting.
func BlendFiles(cache *ImageCache, basePath, overlayPath, modeName string, opacity float64) (*image.NRGBA, blend.Mode, error) {
	mode, err := blend.ParseMode(modeName)
	if err != nil {
		return nil, 0, err
	}

	baseImg, err := cache.Load(basePath)
	if err != nil {
		return nil, 0, err
	}
	overlayImg, err := cache.Load(overlayPath)
	if err != nil {
		return nil, 0, err
	}

	result, err := blend.Blend(ToFloat(baseImg), ToFloat(overlayImg), mode, opacity)
	if err != nil {
		return nil, 0, err
	}

	rendered, err := FromFloat(result)
	if err != nil {
		return nil, 0, err
	}
	return rendered, mode, nil
}

// CompareFiles loads two images and measures their difference. Both go
// through the engine's float representation first, so pixel-identical
// files report identical even when their formats differ.
func CompareFiles(cache *ImageCache, pathA, pathB string) (*CompareResult, error) {
	imgA, err := cache.Load(pathA)
	if err != nil {
		return nil, err
	}
	imgB, err := cache.Load(pathB)
	if err != nil {
		return nil, err
	}
	return Compare(ToFloat(imgA), ToFloat(imgB))
}
