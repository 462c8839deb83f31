package main

import (
	"go.uber.org/zap"

	_ "go.uber.org/automaxprocs"

	"github.com/lumo-dev/xcoll/lib/list"
)

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer func() { _ = logger.Sync() }()

	l := list.NewList[int]()
	logger.Infow("created an empty list", "list", l.String(), "size", l.Len())

	for _, v := range []int{1, 2, 3, 4} {
		l.PushBack(v)
	}
	logger.Infow("pushed 4 values", "list", l.String(), "size", l.Len())

	l.Insert(l.End(), 5)
	logger.Infow("inserted at the end", "list", l.String())

	l.Insert(l.Begin(), -1)
	logger.Infow("inserted at the start", "list", l.String())

	l.Insert(l.Begin().Advance(2), -2)
	logger.Infow("inserted in the middle", "list", l.String())

	after := l.Erase(l.Begin().Advance(3))
	logger.Infow("erased one value", "list", l.String(), "after", after.Value())

	cp := l.Clone()
	logger.Infow("copied the list", "copy", cp.String(), "original", l.String())
	logger.Infow("compared the copy and the original",
		"equal", cp.Equal(l), "notEqual", !cp.Equal(l))

	sum := 0
	for it := l.CBegin(); it != l.CEnd(); it = it.Next() {
		sum += it.Value()
	}
	logger.Infow("summed by forward iteration", "sum", sum)

	var reversed []int
	for it := l.RBegin(); it != l.REnd(); it = it.Next() {
		reversed = append(reversed, it.Value())
	}
	logger.Infow("walked backwards from the end", "reversed", reversed)
}
