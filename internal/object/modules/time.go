package modules

import (
	"time"

	"github.com/questlang/quest/internal/object"
)

// BuildTime registers time.* built-ins (construction only; the time kinds
// answer just the universal methods, with no compare, to_string or
// calendar arithmetic) and returns the `time` module.
func BuildTime(reg *Registry) *object.Module {
	reg.Register("time.now", func(args []object.Value, scope interface{}) (object.Value, error) {
		return object.NewTimestamp(time.Now()), nil
	}, "time", CategoryTime, "the current instant")

	reg.Register("time.parse", func(args []object.Value, scope interface{}) (object.Value, error) {
		s, err := strArgOf(args, "time.parse")
		if err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, object.Raise(object.ValueErr, "time.parse: %v", err)
		}
		return object.NewTimestamp(t), nil
	}, "time", CategoryTime, "parse an RFC3339 timestamp")

	reg.Register("time.date", func(args []object.Value, scope interface{}) (object.Value, error) {
		if len(args) != 3 {
			return nil, object.WrongArgc("time.date", 3, len(args))
		}
		y, m, d, err := ymd(args)
		if err != nil {
			return nil, err
		}
		return object.NewDate(time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)), nil
	}, "time", CategoryTime, "construct a calendar Date")

	reg.Register("time.sleep", func(args []object.Value, scope interface{}) (object.Value, error) {
		secs, err := f64(args, 0)
		if err != nil {
			return nil, err
		}
		time.Sleep(time.Duration(secs * float64(time.Second)))
		return object.NilValue, nil
	}, "time", CategoryTime, "block the current goroutine for the given number of seconds")

	return moduleFromRegistry("time", "instants, dates, and durations", CategoryTime, reg)
}

func ymd(args []object.Value) (y, m, d int, err error) {
	ints := make([]int, 3)
	for i := 0; i < 3; i++ {
		n, ok := args[i].(*object.Int)
		if !ok {
			return 0, 0, 0, object.Raise(object.TypeErr, "time.date expects three Int arguments")
		}
		ints[i] = int(n.Val())
	}
	return ints[0], ints[1], ints[2], nil
}
