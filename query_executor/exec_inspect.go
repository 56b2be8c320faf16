package executor

import (
	bplus "TreeDB/bplustree"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
)

func (vm *VM) ExecuteDump() error {
	return vm.tree.View(func(t *bplus.BPlusTree) error {
		return t.Dump(vm.out)
	})
}

// ExecuteCheck verifies every structural invariant of the tree.
func (vm *VM) ExecuteCheck() error {
	var entries, height int
	err := vm.tree.View(func(t *bplus.BPlusTree) error {
		entries, height = t.Len(), t.Height()
		return t.CheckInvariants()
	})
	if err != nil {
		return errors.Wrap(err, "check failed")
	}
	fmt.Fprintf(vm.out, "OK: %s entries, height %d\n", humanize.Comma(int64(entries)), height)
	return nil
}

func (vm *VM) ExecuteStats() {
	s := vm.tree.Stats()
	ratio := 0.0
	if total := s.Hits + s.Misses; total > 0 {
		ratio = float64(s.Hits) / float64(total) * 100
	}

	vm.PrintLine([]string{"entries", "height", "capacity", "cache hits", "cache misses", "hit ratio"})
	vm.PrintSeparator(6)
	vm.PrintLine([]string{
		humanize.Comma(int64(s.Entries)),
		fmt.Sprintf("%d", s.Height),
		fmt.Sprintf("%d", s.Capacity),
		humanize.Comma(int64(s.Hits)),
		humanize.Comma(int64(s.Misses)),
		humanize.FormatFloat("#.##", ratio) + "%",
	})
}
