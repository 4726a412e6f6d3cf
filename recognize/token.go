// Package recognize implements the pattern recognizer: it scans a log
// record and produces an ordered sequence of typed Tokens plus the literal
// byte runs between them, using the fixed priority order and longest-match
// policy described by the design. It never fails on input — unrecognized
// bytes simply never produce a Token, and the caller treats that span as
// literal text.
package recognize

import "fmt"

// Kind identifies which typed pattern a Token carries. The declaration
// order doubles as the recognizer's priority order: when two candidate
// patterns match the same length at the same position, the one declared
// first here wins.
type Kind uint8

const (
	KindTimestamp Kind = iota
	KindDate
	KindTime
	KindUUID
	KindIPv6
	KindIPv4
	KindLogLevel
	KindURL
	KindEmail
	KindPath
	KindNumber
)

// kinds lists every Kind in priority order, the same order in which
// matchersByPriority (scanner.go) holds their matchers.
var kinds = []Kind{
	KindTimestamp, KindDate, KindTime, KindUUID, KindIPv6, KindIPv4,
	KindLogLevel, KindURL, KindEmail, KindPath, KindNumber,
}

func (k Kind) String() string {
	switch k {
	case KindTimestamp:
		return "timestamp"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindUUID:
		return "uuid"
	case KindIPv6:
		return "ipv6"
	case KindIPv4:
		return "ipv4"
	case KindLogLevel:
		return "log_level"
	case KindURL:
		return "url"
	case KindEmail:
		return "email"
	case KindPath:
		return "path"
	case KindNumber:
		return "number"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Token is a recognized typed span. Exactly one of the kind-specific fields
// is meaningful, selected by Kind; the rest are zero value. This flat,
// tagged-struct shape avoids interface boxing on the recognizer's hot path,
// where tokens are appended directly into column builders.
type Token struct {
	Kind       Kind
	Start, End int // byte offsets within the record that produced this token

	Timestamp TimestampValue
	Date      uint32 // epoch days
	Time      TimeValue
	IPv4      uint32
	IPv6      IPv6Value
	UUID      UUIDValue
	LogLevel  uint8
	Number    NumberValue
	Text      string // Email, URL, Path: verbatim matched text
}

// Render reproduces the exact original bytes this token was recognized
// from. Concatenating a record's literal runs and its tokens' Render
// output, in order, must reproduce the record byte-for-byte.
func (t Token) Render() string {
	switch t.Kind {
	case KindTimestamp:
		return t.Timestamp.Render()
	case KindDate:
		return renderDate(t.Date)
	case KindTime:
		return t.Time.Render()
	case KindIPv4:
		return renderIPv4(t.IPv4)
	case KindIPv6:
		return t.IPv6.Text
	case KindUUID:
		return t.UUID.Render()
	case KindLogLevel:
		return logLevelAlphabet[t.LogLevel]
	case KindNumber:
		return t.Number.Repr
	case KindURL, KindEmail, KindPath:
		return t.Text
	default:
		return ""
	}
}
