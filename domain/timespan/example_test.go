package timespan_test

import (
	"fmt"

	"github.com/helixml/xact/domain/timespan"
)

func ExampleParse() {
	ts, err := timespan.Parse("01.12:23:34.5678901")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ts.Days(), ts.Hours(), ts.Minutes(), ts.Seconds(), ts.Milliseconds(), ts.Microseconds())
	// Output: 1 12 23 34 567 890
}

func ExampleTimespan_Mul() {
	week, _ := timespan.FromComponents(timespan.Components{
		Days: 7, Hours: 1, Minutes: 23, Seconds: 45, Milliseconds: 632, Microseconds: 942,
	})
	doubled, err := week.Mul(2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(doubled.Days(), doubled)
	// Output: 14 14.02:47:31.265884
}

func ExampleTimespan_Format() {
	ts := timespan.MustParse("-1.02:03:04.5")
	fmt.Println(ts.Format("c"))
	fmt.Println(ts.Format("g"))
	fmt.Println(ts.Format("G"))
	fmt.Println(ts.Format(`hh\:mm`))
	// Output:
	// -1.02:03:04.5
	// -1:02:03:04.5
	// -1:02:03:04.5000000
	// -02:03
}
