package tx3

// ArgValue is a template argument supplied by a client.
type ArgValue interface {
	isArg()
}

type (
	// BoolArg is a boolean argument.
	BoolArg bool
	// IntArg is an integer argument.
	IntArg int64
	// StringArg is a UTF-8 string argument.
	StringArg string
	// BytesArg is a raw bytes argument.
	BytesArg []byte
)

func (BoolArg) isArg() {}
func (IntArg) isArg() {}
func (StringArg) isArg() {}
func (BytesArg) isArg() {}

// ProtoTx is an IR transaction template plus its bound arguments.
type ProtoTx struct {
	IR   []byte
	Args map[string]ArgValue
}

// NewProtoTx wraps IR bytes with an empty argument set.
func NewProtoTx(ir []byte) ProtoTx {
	return ProtoTx{IR: ir, Args: make(map[string]ArgValue)}
}

// SetArg binds an argument by name, replacing any previous value.
func (p *ProtoTx) SetArg(name string, value ArgValue) {
	if p.Args == nil {
		p.Args = make(map[string]ArgValue)
	}
	p.Args[name] = value
}
