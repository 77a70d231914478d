package status

// Tone is a presentation hint; renderers map it to their own palette.
type Tone string

const (
	ToneDanger  Tone = "danger"
	ToneWarning Tone = "warning"
	ToneSuccess Tone = "success"
	ToneMuted   Tone = "muted"
)

type Meta struct {
	Label    string
	Priority int
	Tone     Tone
}

var generalMeta = map[General]Meta{
	AtRisk:    {Label: "At Risk", Priority: 1, Tone: ToneDanger},
	Attention: {Label: "Attention", Priority: 2, Tone: ToneWarning},
	OnTrack:   {Label: "On Track", Priority: 3, Tone: ToneSuccess},
	Inactive:  {Label: "Inactive", Priority: 4, Tone: ToneMuted},
	Empty:     {Label: "Empty", Priority: 5, Tone: ToneMuted},
}

var engagementMeta = map[Engagement]Meta{
	EngagementHigh:   {Label: "High", Priority: 1, Tone: ToneSuccess},
	EngagementMedium: {Label: "Medium", Priority: 2, Tone: ToneWarning},
	EngagementLow:    {Label: "Low", Priority: 3, Tone: ToneDanger},
}

// MetaFor returns display metadata for a general status.
func MetaFor(g General) Meta {
	if m, ok := generalMeta[g]; ok {
		return m
	}
	return Meta{Label: string(g), Priority: 99, Tone: ToneMuted}
}

// EngagementMetaFor returns display metadata for an engagement level.
func EngagementMetaFor(e Engagement) Meta {
	if m, ok := engagementMeta[e]; ok {
		return m
	}
	return Meta{Label: string(e), Priority: 99, Tone: ToneMuted}
}
