// This file is part of Ember2600.
//
// Ember2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ember2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ember2600.  If not, see <https://www.gnu.org/licenses/>.

package television

import (
	"fmt"

	"github.com/ewenb/ember2600/hardware/television/specification"
)

// the number of frames after which the image is considered stable. pixel
// renderers may not want to show the loose frames that occur immediately
// after hard-reset.
const stabilityThreshold = 6

// FrameInfo records the current frame information. A copy of the governing
// specification is provided for reference.
type FrameInfo struct {
	Spec specification.Spec

	FrameNum int

	// the top and bottom scanlines that are to be presented visually to the
	// player. consumers of FrameInfo should use these values rather than
	// deriving the information from the specification directly
	VisibleTop    int
	VisibleBottom int

	// the number of scanlines in the frame
	TotalScanlines int

	// the refresh rate of the frame
	RefreshRate float32

	// Stable is true once the television frame has been consistent for N
	// frames after reset
	Stable bool
}

// NewFrameInfo returns an initialised FrameInfo for the specification.
func NewFrameInfo(spec specification.Spec) FrameInfo {
	info := FrameInfo{
		Spec: spec,
	}
	info.reset()
	return info
}

func (info FrameInfo) String() string {
	return fmt.Sprintf("%s: top: %d, bottom: %d, total: %d", info.Spec.ID, info.VisibleTop, info.VisibleBottom, info.TotalScanlines)
}

// IsDifferent returns true if any of the pertinent display information is
// different between the two copies of FrameInfo.
func (info FrameInfo) IsDifferent(cmp FrameInfo) bool {
	return info.Spec.ID != cmp.Spec.ID ||
		info.VisibleTop != cmp.VisibleTop ||
		info.VisibleBottom != cmp.VisibleBottom
}

func (info *FrameInfo) reset() {
	info.VisibleTop = info.Spec.VisibleTop
	info.VisibleBottom = info.Spec.VisibleBottom
	info.TotalScanlines = info.Spec.ScanlinesTotal
	info.RefreshRate = info.Spec.RefreshRate
	info.Stable = false
}
