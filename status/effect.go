package status

import (
	"log/slog"
	"strings"

	"github.com/d5/tengo/v2"
)

func buildEffect(target Target, log *slog.Logger) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["change_speed"] = &tengo.UserFunction{Name: "change_speed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		delta, err := floatArg(args[0], "delta")
		if err != nil {
			return nil, err
		}
		duration, err := floatArg(args[1], "duration")
		if err != nil {
			return nil, err
		}
		target.ChangeSpeedFor(delta, duration)
		return tengo.TrueValue, nil
	}}

	values["invert_controls"] = &tengo.UserFunction{Name: "invert_controls", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		duration, err := floatArg(args[0], "duration")
		if err != nil {
			return nil, err
		}
		return boolObject(target.InvertControlsFor(duration)), nil
	}}

	values["disable_control"] = &tengo.UserFunction{Name: "disable_control", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		duration, err := floatArg(args[0], "duration")
		if err != nil {
			return nil, err
		}
		return boolObject(target.DisableControlFor(duration)), nil
	}}

	values["speed"] = &tengo.UserFunction{Name: "speed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: target.State().BaseRunSpeed}, nil
	}}

	values["grounded"] = &tengo.UserFunction{Name: "grounded", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(target.State().Grounded), nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		log.Info(strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func floatArg(obj tengo.Object, name string) (float64, error) {
	v, ok := tengo.ToFloat64(obj)
	if !ok {
		return 0, tengo.ErrInvalidArgumentType{Name: name, Expected: "float", Found: obj.TypeName()}
	}
	return v, nil
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
