package log

import (
	"time"

	"gopkg.in/Sirupsen/logrus.v0"
)

// EntryZ accumulates typed fields without allocation-heavy formatting until
// End() actually emits the line. A nil *EntryZ (module disabled) is valid:
// every method is a no-op on it, so call sites need no level checks.
type EntryZ struct {
	mod   Module
	lvl   Level
	msg   string
	zfbuf [8]ZField
	zfidx int
}

func NewEntryZ() *EntryZ {
	return &EntryZ{}
}

func (e *EntryZ) field(f ZField) *EntryZ {
	if e == nil || e.zfidx >= len(e.zfbuf) {
		return e
	}
	e.zfbuf[e.zfidx] = f
	e.zfidx++
	return e
}

func (e *EntryZ) String(key, val string) *EntryZ {
	return e.field(ZField{Type: FieldTypeString, Key: key, String: val})
}

func (e *EntryZ) Hex8(key string, val uint8) *EntryZ {
	return e.field(ZField{Type: FieldTypeHex8, Key: key, Integer: uint64(val)})
}

func (e *EntryZ) Hex16(key string, val uint16) *EntryZ {
	return e.field(ZField{Type: FieldTypeHex16, Key: key, Integer: uint64(val)})
}

func (e *EntryZ) Int(key string, val int) *EntryZ {
	return e.field(ZField{Type: FieldTypeInt, Key: key, Integer: uint64(val)})
}

func (e *EntryZ) Int64(key string, val int64) *EntryZ {
	return e.field(ZField{Type: FieldTypeInt, Key: key, Integer: uint64(val)})
}

func (e *EntryZ) Uint(key string, val uint64) *EntryZ {
	return e.field(ZField{Type: FieldTypeUint, Key: key, Integer: val})
}

func (e *EntryZ) Bool(key string, val bool) *EntryZ {
	return e.field(ZField{Type: FieldTypeBool, Key: key, Boolean: val})
}

func (e *EntryZ) Err(err error) *EntryZ {
	return e.field(ZField{Type: FieldTypeError, Key: "error", Error: err})
}

func (e *EntryZ) Duration(key string, d time.Duration) *EntryZ {
	return e.field(ZField{Type: FieldTypeDuration, Key: key, Duration: d})
}

func (e *EntryZ) Stringer(key string, val any) *EntryZ {
	return e.field(ZField{Type: FieldTypeStringer, Key: key, Interface: val})
}

func (e *EntryZ) Blob(key string, val []byte) *EntryZ {
	return e.field(ZField{Type: FieldTypeBlob, Key: key, Blob: val})
}

// End emits the accumulated entry.
func (e *EntryZ) End() {
	if e == nil {
		return
	}

	fields := make(logrus.Fields, e.zfidx+1)
	fields["_mod"] = modNames[e.mod]
	for i := range e.zfbuf[:e.zfidx] {
		fields[e.zfbuf[i].Key] = e.zfbuf[i].Value()
	}

	entry := logrus.StandardLogger().WithFields(fields)
	switch e.lvl {
	case PanicLevel:
		entry.Panic(e.msg)
	case FatalLevel:
		entry.Fatal(e.msg)
	case ErrorLevel:
		entry.Error(e.msg)
	case WarnLevel:
		entry.Warn(e.msg)
	case InfoLevel:
		entry.Info(e.msg)
	default:
		entry.Debug(e.msg)
	}
}
