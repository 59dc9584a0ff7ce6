package vec

import "fmt"

// Make разбирает аргументы в одной из трёх форм: два числа, пара
// ([]float64 или [2]float64), объект с координатами x и y (VectorLike или
// map с ключами "x" и "y"). Остальное возвращает ErrInvalidArgument.
func Make(args ...interface{}) (*V2D, error) {
	switch len(args) {
	case 2:
		x, okX := toFloat(args[0])
		y, okY := toFloat(args[1])
		if !okX || !okY {
			return nil, fmt.Errorf("координаты должны быть числами, получено %T и %T: %w", args[0], args[1], ErrInvalidArgument)
		}
		return New(x, y), nil
	case 1:
		return makeFromOne(args[0])
	default:
		return nil, fmt.Errorf("ожидалось 1 или 2 аргумента, получено %d: %w", len(args), ErrInvalidArgument)
	}
}

// ResetFrom перезаписывает координаты по тем же правилам, что и Make.
// При ошибке вектор не меняется.
func (v *V2D) ResetFrom(args ...interface{}) (*V2D, error) {
	parsed, err := Make(args...)
	if err != nil {
		return v, err
	}
	return v.ResetTo(parsed), nil
}

func makeFromOne(arg interface{}) (*V2D, error) {
	switch a := arg.(type) {
	case Scalar:
		// одиночное число не является парой координат
		return nil, fmt.Errorf("одиночный скаляр %v: %w", float64(a), ErrInvalidArgument)
	case *V2D:
		if a == nil {
			return nil, fmt.Errorf("nil вектор: %w", ErrInvalidArgument)
		}
		return From(a), nil
	case VectorLike:
		return From(a), nil
	case [2]float64:
		return FromPair(a), nil
	case []float64:
		return FromSlice(a)
	case []interface{}:
		if len(a) != 2 {
			return nil, fmt.Errorf("ожидалось 2 координаты, получено %d: %w", len(a), ErrInvalidArgument)
		}
		return Make(a[0], a[1])
	case map[string]float64:
		x, okX := a["x"]
		y, okY := a["y"]
		if !okX || !okY {
			return nil, fmt.Errorf("в объекте нет полей x и y: %w", ErrInvalidArgument)
		}
		return New(x, y), nil
	case map[string]interface{}:
		x, okX := toFloat(a["x"])
		y, okY := toFloat(a["y"])
		if !okX || !okY {
			return nil, fmt.Errorf("в объекте нет числовых полей x и y: %w", ErrInvalidArgument)
		}
		return New(x, y), nil
	default:
		return nil, fmt.Errorf("неподдерживаемый тип %T: %w", arg, ErrInvalidArgument)
	}
}

func toFloat(n interface{}) (float64, bool) {
	switch v := n.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case Scalar:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
