// Opaque library-provided value kinds (spec.md §3's closing row): Uuid,
// Timestamp/Zoned/Date/Time/Span/DateRange, SerialPort, db cursors/
// connections, HtmlTemplate, Http*, Rng, StringIO, SystemStream,
// RedirectGuard, Process*, Stream*. These are thin wrappers constructed by
// the standard-module glue (internal/object/modules); this file only
// carries their Value-kind shape (Cls/Str/Rep/Id/Truthy) per spec.md §4.1's
// universal object contract.
package object

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Uuid wraps github.com/google/uuid, grounded on _examples/termfx-morfx's
// direct dependency on the same package.
type Uuid struct {
	id  int64
	val uuid.UUID
}

func NewUuid(v uuid.UUID) *Uuid {
	trackAlloc("Uuid")
	return &Uuid{id: NextID(), val: v}
}

func (u *Uuid) Cls() string  { return "Uuid" }
func (u *Uuid) Id() int64    { return u.id }
func (u *Uuid) Truthy() bool { return true }
func (u *Uuid) Str() string  { return u.val.String() }
func (u *Uuid) Rep() string  { return fmt.Sprintf("Uuid(%q)", u.val.String()) }
func (u *Uuid) Val() uuid.UUID { return u.val }
func (u *Uuid) Copy() Value  { return u }

func (u *Uuid) Equals(other Value) bool {
	o, ok := other.(*Uuid)
	return ok && u.val == o.val
}

// Timestamp wraps an absolute instant (wall-clock + location), constructed
// by the `time` leaf module. Scripts can call only the universal methods
// (cls/str/_rep/_id/_doc) on it; there is no to_string or compare method.
// Compare below is Go-level ordering, used by Array.sort.
type Timestamp struct {
	id  int64
	val time.Time
}

func NewTimestamp(v time.Time) *Timestamp {
	trackAlloc("Timestamp")
	return &Timestamp{id: NextID(), val: v}
}

func (t *Timestamp) Cls() string     { return "Timestamp" }
func (t *Timestamp) Id() int64       { return t.id }
func (t *Timestamp) Truthy() bool    { return true }
func (t *Timestamp) Str() string     { return t.val.Format(time.RFC3339) }
func (t *Timestamp) Rep() string     { return fmt.Sprintf("Timestamp(%q)", t.Str()) }
func (t *Timestamp) Val() time.Time  { return t.val }
func (t *Timestamp) Copy() Value     { return t }

func (t *Timestamp) Equals(other Value) bool {
	o, ok := other.(*Timestamp)
	return ok && t.val.Equal(o.val)
}

func (t *Timestamp) Compare(other Value) (int, bool) {
	o, ok := other.(*Timestamp)
	if !ok {
		return 0, false
	}
	switch {
	case t.val.Before(o.val):
		return -1, true
	case t.val.After(o.val):
		return 1, true
	default:
		return 0, true
	}
}

// Zoned is a Timestamp paired with an explicit IANA zone name.
type Zoned struct {
	id   int64
	val  time.Time
	zone string
}

func NewZoned(v time.Time, zone string) *Zoned {
	trackAlloc("Zoned")
	return &Zoned{id: NextID(), val: v, zone: zone}
}

func (z *Zoned) Cls() string  { return "Zoned" }
func (z *Zoned) Id() int64    { return z.id }
func (z *Zoned) Truthy() bool { return true }
func (z *Zoned) Str() string  { return z.val.Format(time.RFC3339) + " " + z.zone }
func (z *Zoned) Rep() string  { return fmt.Sprintf("Zoned(%q)", z.Str()) }
func (z *Zoned) Val() time.Time { return z.val }
func (z *Zoned) Zone() string   { return z.zone }
func (z *Zoned) Copy() Value    { return z }

// Date is a calendar date with no time-of-day component.
type Date struct {
	id  int64
	val time.Time
}

func NewDate(v time.Time) *Date {
	trackAlloc("Date")
	return &Date{id: NextID(), val: time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d *Date) Cls() string  { return "Date" }
func (d *Date) Id() int64    { return d.id }
func (d *Date) Truthy() bool { return true }
func (d *Date) Str() string  { return d.val.Format("2006-01-02") }
func (d *Date) Rep() string  { return fmt.Sprintf("Date(%q)", d.Str()) }
func (d *Date) Val() time.Time { return d.val }
func (d *Date) Copy() Value    { return d }

func (d *Date) Compare(other Value) (int, bool) {
	o, ok := other.(*Date)
	if !ok {
		return 0, false
	}
	switch {
	case d.val.Before(o.val):
		return -1, true
	case d.val.After(o.val):
		return 1, true
	default:
		return 0, true
	}
}

// Time is a time-of-day with no calendar-date component.
type Time struct {
	id  int64
	val time.Duration // offset since midnight
}

func NewTime(v time.Duration) *Time {
	trackAlloc("Time")
	return &Time{id: NextID(), val: v}
}

func (t *Time) Cls() string  { return "Time" }
func (t *Time) Id() int64    { return t.id }
func (t *Time) Truthy() bool { return true }
func (t *Time) Str() string  { return fmt.Sprintf("%02d:%02d:%02d", int(t.val.Hours())%24, int(t.val.Minutes())%60, int(t.val.Seconds())%60) }
func (t *Time) Rep() string  { return fmt.Sprintf("Time(%q)", t.Str()) }
func (t *Time) Val() time.Duration { return t.val }
func (t *Time) Copy() Value        { return t }

// Span is a duration between two instants.
type Span struct {
	id  int64
	val time.Duration
}

func NewSpan(v time.Duration) *Span {
	trackAlloc("Span")
	return &Span{id: NextID(), val: v}
}

func (s *Span) Cls() string  { return "Span" }
func (s *Span) Id() int64    { return s.id }
func (s *Span) Truthy() bool { return s.val != 0 }
func (s *Span) Str() string  { return s.val.String() }
func (s *Span) Rep() string  { return fmt.Sprintf("Span(%q)", s.Str()) }
func (s *Span) Val() time.Duration { return s.val }
func (s *Span) Copy() Value        { return s }

func (s *Span) Compare(other Value) (int, bool) {
	o, ok := other.(*Span)
	if !ok {
		return 0, false
	}
	switch {
	case s.val < o.val:
		return -1, true
	case s.val > o.val:
		return 1, true
	default:
		return 0, true
	}
}

// DateRange is an inclusive [Start, End] pair of Date values.
type DateRange struct {
	id         int64
	Start, End *Date
}

func NewDateRange(start, end *Date) *DateRange {
	trackAlloc("DateRange")
	return &DateRange{id: NextID(), Start: start, End: end}
}

func (r *DateRange) Cls() string  { return "DateRange" }
func (r *DateRange) Id() int64    { return r.id }
func (r *DateRange) Truthy() bool { return true }
func (r *DateRange) Str() string  { return r.Start.Str() + ".." + r.End.Str() }
func (r *DateRange) Rep() string  { return fmt.Sprintf("DateRange(%q, %q)", r.Start.Str(), r.End.Str()) }
func (r *DateRange) Copy() Value  { return r }

// Rng wraps math/rand/v2's generator state.
type Rng struct {
	id  int64
	src interface {
		Uint64() uint64
	}
}

func NewRng(src interface{ Uint64() uint64 }) *Rng {
	trackAlloc("Rng")
	return &Rng{id: NextID(), src: src}
}

func (r *Rng) Cls() string  { return "Rng" }
func (r *Rng) Id() int64    { return r.id }
func (r *Rng) Truthy() bool { return true }
func (r *Rng) Str() string  { return "<rng>" }
func (r *Rng) Rep() string  { return r.Str() }
func (r *Rng) Source() interface{ Uint64() uint64 } { return r.src }

// StringIO is an in-memory read/write byte buffer, backing `io.string_io`.
type StringIO struct {
	id   int64
	Data []byte
	pos  int
}

func NewStringIO(initial []byte) *StringIO {
	trackAlloc("StringIO")
	return &StringIO{id: NextID(), Data: initial}
}

func (s *StringIO) Cls() string  { return "StringIO" }
func (s *StringIO) Id() int64    { return s.id }
func (s *StringIO) Truthy() bool { return len(s.Data) != 0 }
func (s *StringIO) Str() string  { return string(s.Data) }
func (s *StringIO) Rep() string  { return fmt.Sprintf("StringIO(%q)", s.Str()) }
func (s *StringIO) Copy() Value  { return s }

func (s *StringIO) Write(p []byte) {
	s.Data = append(s.Data, p...)
}

func (s *StringIO) ReadAll() []byte {
	out := s.Data[s.pos:]
	s.pos = len(s.Data)
	return out
}

// SystemStream wraps one of the process's stdin/stdout/stderr handles.
type SystemStream struct {
	id   int64
	Name string // "stdin" | "stdout" | "stderr"
}

func NewSystemStream(name string) *SystemStream {
	trackAlloc("SystemStream")
	return &SystemStream{id: NextID(), Name: name}
}

func (s *SystemStream) Cls() string  { return "SystemStream" }
func (s *SystemStream) Id() int64    { return s.id }
func (s *SystemStream) Truthy() bool { return true }
func (s *SystemStream) Str() string  { return "<stream " + s.Name + ">" }
func (s *SystemStream) Rep() string  { return s.Str() }

// RedirectGuard flips an `active` bit on construction and restores on
// drop; truthy iff active, per spec.md §3's explicit truthiness exception.
type RedirectGuard struct {
	id       int64
	Active   bool
	Restore  func()
}

func NewRedirectGuard(restore func()) *RedirectGuard {
	trackAlloc("RedirectGuard")
	return &RedirectGuard{id: NextID(), Active: true, Restore: restore}
}

func (g *RedirectGuard) Cls() string  { return "RedirectGuard" }
func (g *RedirectGuard) Id() int64    { return g.id }
func (g *RedirectGuard) Truthy() bool { return g.Active }
func (g *RedirectGuard) Str() string  { return "<redirect guard>" }
func (g *RedirectGuard) Rep() string  { return g.Str() }

func (g *RedirectGuard) Close() {
	if g.Active && g.Restore != nil {
		g.Restore()
	}
	g.Active = false
}

// ProcessHandle wraps a started child process.
type ProcessHandle struct {
	id  int64
	Pid int
	Wait func() (*ProcessResult, error)
}

func NewProcessHandle(pid int, wait func() (*ProcessResult, error)) *ProcessHandle {
	trackAlloc("ProcessHandle")
	return &ProcessHandle{id: NextID(), Pid: pid, Wait: wait}
}

func (p *ProcessHandle) Cls() string  { return "ProcessHandle" }
func (p *ProcessHandle) Id() int64    { return p.id }
func (p *ProcessHandle) Truthy() bool { return true }
func (p *ProcessHandle) Str() string  { return fmt.Sprintf("<process pid=%d>", p.Pid) }
func (p *ProcessHandle) Rep() string  { return p.Str() }

// ProcessResult carries a completed child process's outcome. Truthy iff
// exit code 0, per spec.md §3's explicit truthiness exception.
type ProcessResult struct {
	id       int64
	ExitCode int
	Stdout   string
	Stderr   string
}

func NewProcessResult(code int, stdout, stderr string) *ProcessResult {
	trackAlloc("ProcessResult")
	return &ProcessResult{id: NextID(), ExitCode: code, Stdout: stdout, Stderr: stderr}
}

func (r *ProcessResult) Cls() string  { return "ProcessResult" }
func (r *ProcessResult) Id() int64    { return r.id }
func (r *ProcessResult) Truthy() bool { return r.ExitCode == 0 }
func (r *ProcessResult) Str() string  { return fmt.Sprintf("<process result exit=%d>", r.ExitCode) }
func (r *ProcessResult) Rep() string  { return r.Str() }

// StubOpaque backs the leaf value kinds SPEC_FULL.md registers only to the
// point of existing (HtmlTemplate, Http*, db cursors/connections,
// SerialPort, compress Stream*): constructible and nameable via
// sys.builtin_module_names, but every method beyond the universal
// cls/str/_rep/_id/_doc errors
// RuntimeErr("not implemented in this build") per SPEC_FULL.md's leaf
// standard-module section.
type StubOpaque struct {
	id   int64
	Kind string
}

func NewStubOpaque(kind string) *StubOpaque {
	trackAlloc(kind)
	return &StubOpaque{id: NextID(), Kind: kind}
}

func (s *StubOpaque) Cls() string  { return s.Kind }
func (s *StubOpaque) Id() int64    { return s.id }
func (s *StubOpaque) Truthy() bool { return true }
func (s *StubOpaque) Str() string  { return "<" + s.Kind + ">" }
func (s *StubOpaque) Rep() string  { return s.Str() }
