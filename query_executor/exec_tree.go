package executor

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ExecuteInsert expects the stack to hold [key, value].
func (vm *VM) ExecuteInsert() error {
	value, err := vm.pop()
	if err != nil {
		return errors.Wrap(err, "insert: missing value")
	}
	key, err := vm.popKey()
	if err != nil {
		return errors.Wrap(err, "insert")
	}
	vm.tree.Insert(key, value)
	vm.logger.Debug("inserted", zap.Int("key", key))
	fmt.Fprintln(vm.out, "OK")
	return nil
}

// ExecuteLookup expects the stack to hold [key].
func (vm *VM) ExecuteLookup() error {
	key, err := vm.popKey()
	if err != nil {
		return errors.Wrap(err, "lookup")
	}
	value, ok := vm.tree.Lookup(key)
	if !ok {
		fmt.Fprintf(vm.out, "key %d not found\n", key)
		return nil
	}
	fmt.Fprintf(vm.out, "%d -> %q\n", key, value)
	return nil
}

// ExecuteDelete expects the stack to hold [key].
func (vm *VM) ExecuteDelete() error {
	key, err := vm.popKey()
	if err != nil {
		return errors.Wrap(err, "delete")
	}
	value, ok := vm.tree.Delete(key)
	if !ok {
		fmt.Fprintf(vm.out, "key %d not found\n", key)
		return nil
	}
	vm.logger.Debug("deleted", zap.Int("key", key))
	fmt.Fprintf(vm.out, "deleted %d -> %q\n", key, value)
	return nil
}
