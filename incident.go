package staffdir

// IncidentCategory classifies a per-URL failure.
type IncidentCategory string

// Incident categories. All are isolated to a single URL; none aborts a batch.
const (
	// IncidentRendererFailed means the HTTP fetch failed and the browser
	// renderer also failed to produce content.
	IncidentRendererFailed IncidentCategory = "renderer_failed"

	// IncidentUnreachable means the HTTP fetch failed and no renderer was
	// available to fall back to.
	IncidentUnreachable IncidentCategory = "unreachable"

	// IncidentParseFailed means content was fetched but could not be parsed
	// into a document tree.
	IncidentParseFailed IncidentCategory = "parse_failed"

	// IncidentNoData means content was fetched and parsed but no strategy
	// recognized a usable structure.
	IncidentNoData IncidentCategory = "no_data"

	// IncidentUnexpected marks any other error surfacing while processing a
	// single URL. Fatal for that URL only.
	IncidentUnexpected IncidentCategory = "unexpected"
)

// Incident describes one per-URL failure for the error sink.
type Incident struct {
	Category IncidentCategory
	URL      string

	// Reason carries the underlying error text, where one exists.
	Reason string

	// Attempted lists strategy names tried, for IncidentNoData.
	Attempted []string
}

// IncidentWriter appends incidents to the error sink.
type IncidentWriter interface {
	WriteIncident(incident *Incident) error
}
