// Package activity holds the fixed list of event categories shared by the
// API validators and the client form.
package activity

import "slices"

var Categories = []string{
	"basketball", "yoga", "baseball", "tennis", "hiking", "running",
	"racquetball", "frisbee", "climbing", "rafting", "kayaking", "swimming",
	"golfing", "football", "ice hockey", "volleyball", "cross fit", "softball",
	"badminton", "walking", "chess", "soccer",
}

func IsValid(category string) bool {
	return slices.Contains(Categories, category)
}
