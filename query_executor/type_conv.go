package executor

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// popKey pops an integer key pushed by OP_PUSH_KEY.
func (vm *VM) popKey() (int, error) {
	raw, err := vm.pop()
	if err != nil {
		return 0, errors.Wrap(err, "missing key")
	}
	key, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid key %q", raw)
	}
	return key, nil
}
