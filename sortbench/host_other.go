//go:build !amd64 && !arm64

package sortbench

func detectSIMD() SIMDLevel {
	return SIMDScalar
}
