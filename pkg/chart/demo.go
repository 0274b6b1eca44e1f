package chart

import (
	"slices"

	"github.com/matzehuels/histoscene/pkg/errors"
)

// DefaultDemo is the dataset used when no demo name is given.
const DefaultDemo = "rewards"

var weeklyLabels = []string{
	"Jul 14", "Jul 21", "Jul 29", "Aug 4", "Aug 11", "Aug 18", "Aug 25",
	"Sep 1", "Sep 8", "Sep 15", "Sep 22", "Sep 29", "Oct 6", "Oct 13", "Oct 20",
}

func stakedSeries() Series {
	return Series{
		Name:  "Staked",
		Color: "#ffaa88",
		Values: Values(
			35129025, 42437593, 44755393, 45577661, 47847475,
			48909435, 51214954, 51770573, 52194485, 52584924,
			52930614, 53873470, 54476245, 55273992, 55125308,
		),
	}
}

// The minted series stops one week short of the label range.
func mintedSeries() Series {
	return Series{
		Name:  "Minted",
		Color: "#ff8800",
		Values: append(Values(
			261061, 323513, 349766, 364933, 392283,
			410370, 439536, 434376, 421039, 413656,
			410692, 404840, 400168, 388520,
		), None()),
	}
}

func demoSpec(caption string, series ...Series) ChartSpec {
	return ChartSpec{
		Width:       800,
		Height:      400,
		Description: "Histogram Example",
		Caption:     caption,
		Labels:      slices.Clone(weeklyLabels),
		Series:      series,
	}
}

var demos = map[string]func() ChartSpec{
	"rewards": func() ChartSpec { return demoSpec("Rewards Distribution", stakedSeries(), mintedSeries()) },
	"staked":  func() ChartSpec { return demoSpec("Staked Rewards", stakedSeries()) },
	"minted":  func() ChartSpec { return demoSpec("Minted Rewards", mintedSeries()) },
}

// DemoNames lists the built-in datasets in sorted order.
func DemoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Demo returns a fresh copy of the named built-in dataset.
func Demo(name string) (ChartSpec, error) {
	build, ok := demos[name]
	if !ok {
		return ChartSpec{}, errors.New(errors.ErrCodeNotFound, "unknown demo %q", name)
	}
	return build(), nil
}
