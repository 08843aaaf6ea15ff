package assert

import "github.com/vantage-gg/stride/serror"

func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(serror.New(message, args...))
	}
}
