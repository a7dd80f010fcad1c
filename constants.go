package ltv

// Memory accounting
const (
	bytesPerFloat64 = 8 // Size of float64 in bytes
)
