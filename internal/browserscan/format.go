package browserscan

import "fmt"

// byteUnits are the supported size units, base 1024. GB is the cap:
// larger values stay expressed in GB.
var byteUnits = [...]string{"KB", "MB", "GB"}

// FormatBytes renders a non-negative byte count as a human string using
// base-1024 units. Values below 1 KB are printed as whole bytes ("0 B",
// "512 B"); scaled values carry two decimals ("1.50 KB", "1.00 GB").
func FormatBytes(n int64) string {
	const unit = 1024

	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < len(byteUnits)-1; m /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.2f %s", float64(n)/float64(div), byteUnits[exp])
}
