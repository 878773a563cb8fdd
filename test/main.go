package main

import (
	"fmt"

	"github.com/hansthienpondt/nipam/pkg/table"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"

	"github.com/TheHeadlessSourceMan/rangeTools/pkg/iprange"
	"github.com/TheHeadlessSourceMan/rangeTools/pkg/numberlike"
	"github.com/TheHeadlessSourceMan/rangeTools/pkg/ranges"
	"github.com/TheHeadlessSourceMan/rangeTools/pkg/rangetable"
)

func main() {
	arith := numberlike.Float64{}

	r, err := ranges.Parse[float64](arith, "0 to 12")
	if err != nil {
		panic(err)
	}
	fmt.Println("parsed", r.String())

	size := 3.0
	end := 0.5
	sep := 0.25
	seq, err := r.Split(ranges.SplitOptions[float64]{
		SectionSize:   &size,
		EndSize:       &end,
		SeparatorSize: &sep,
	})
	if err != nil {
		panic(err)
	}
	for piece := range seq {
		fmt.Println("piece", piece.String())
	}

	tol := ranges.NewFloat64(95, 105)
	s, err := tol.ToleranceString()
	if err != nil {
		panic(err)
	}
	fmt.Println("tolerance", s)

	set := ranges.NewRanges[float64](arith,
		ranges.NewFloat64(5, 9),
		ranges.NewFloat64(3, 5),
		ranges.NewFloat64(1, 2),
	)
	fmt.Println("merged", set.String())

	rt := rangetable.New[float64](arith, ranges.NewFloat64(0, 100))
	if err := rt.Claim(ranges.NewFloat64(10, 20), labels.Set{"tenant": "a"}); err != nil {
		panic(err)
	}
	if err := rt.Claim(ranges.NewFloat64(20, 30), labels.Set{"tenant": "b"}); err != nil {
		panic(err)
	}
	free, err := rt.FindFree(50)
	if err != nil {
		panic(err)
	}
	fmt.Println("free", free.String())

	sel, err := GetLabelSelector(map[string]string{"tenant": "a"})
	if err != nil {
		panic(err)
	}
	for _, e := range rt.GetByLabel(sel) {
		fmt.Println("by label", e.String())
	}

	ipRange, err := netipx.ParseIPRange("10.0.0.10-10.0.0.20")
	if err != nil {
		panic(err)
	}
	ipt := iprange.New(ipRange.From(), ipRange.To())
	if err := ipt.Claim("10.0.0.10", table.Route{}); err != nil {
		panic(err)
	}
	if err := ipt.Claim("10.0.0.11", table.Route{}); err != nil {
		panic(err)
	}
	a, err := ipt.FindFree()
	if err != nil {
		panic(err)
	}
	fmt.Println("next free ip", a.String())
}

func GetLabelSelector(l map[string]string) (labels.Selector, error) {
	fullselector := labels.NewSelector()
	for k, v := range l {
		req, err := labels.NewRequirement(k, selection.Equals, []string{v})
		if err != nil {
			return nil, err
		}
		fullselector = fullselector.Add(*req)
	}
	return fullselector, nil
}
