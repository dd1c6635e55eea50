package fs

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/staffdir"
)

// incidentSeparator terminates every incident block in the log.
const incidentSeparator = "-------\n"

// FormatIncident renders one incident as a human-readable log block. Each
// category has its own severity prefix and layout; every block ends with a
// dashed separator line.
func FormatIncident(incident *staffdir.Incident) string {
	var b strings.Builder

	switch incident.Category {
	case staffdir.IncidentRendererFailed:
		fmt.Fprintf(&b, "ERROR: Renderer failed for URL: %s\n", incident.URL)
		fmt.Fprintf(&b, "       Reason: %s\n", incident.Reason)
	case staffdir.IncidentUnreachable:
		fmt.Fprintf(&b, "ERROR: Could not fetch URL (HTTP failed, no renderer available): %s\n", incident.URL)
	case staffdir.IncidentParseFailed:
		fmt.Fprintf(&b, "ERROR: HTML parsing failed for URL: %s\n", incident.URL)
		fmt.Fprintf(&b, "       Reason: %s\n", incident.Reason)
	case staffdir.IncidentNoData:
		fmt.Fprintf(&b, "WARNING: No staff data extracted from URL: %s\n", incident.URL)
		fmt.Fprintf(&b, "         (Tried %s)\n", strings.Join(incident.Attempted, ", "))
	default:
		fmt.Fprintf(&b, "FATAL ERROR: Unexpected issue processing URL: %s\n", incident.URL)
		fmt.Fprintf(&b, "       Reason: %s\n", incident.Reason)
	}

	b.WriteString(incidentSeparator)
	return b.String()
}

// Ensure IncidentLog implements staffdir.IncidentWriter at compile time.
var _ staffdir.IncidentWriter = (*IncidentLog)(nil)

// IncidentLog appends formatted incident blocks to a plain-text file.
type IncidentLog struct {
	f *os.File
}

// NewIncidentLog creates the log file, truncating any existing file.
func NewIncidentLog(path string) (*IncidentLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &IncidentLog{f: f}, nil
}

// WriteIncident appends one formatted incident block.
func (l *IncidentLog) WriteIncident(incident *staffdir.Incident) error {
	_, err := l.f.WriteString(FormatIncident(incident))
	return err
}

// Close closes the underlying file.
func (l *IncidentLog) Close() error {
	return l.f.Close()
}
