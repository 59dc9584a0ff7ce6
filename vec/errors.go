package vec

import "errors"

// ErrInvalidArgument возвращается, когда из аргументов нельзя получить пару координат
var ErrInvalidArgument = errors.New("недопустимый аргумент")
