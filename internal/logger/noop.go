package logger

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) Debug(string, ...interface{})  {}
func (Noop) Info(string, ...interface{})   {}
func (Noop) Warn(string, ...interface{})   {}
func (Noop) Error(string, ...interface{})  {}
func (n Noop) WithComponent(string) Logger { return n }
