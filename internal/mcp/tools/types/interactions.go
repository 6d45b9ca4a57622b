package types

// Edge is one interaction projected for graph consumers.
type Edge struct {
	Source             string `json:"source"`
	Target             string `json:"target"`
	InteractionID      string `json:"interaction_id"`
	ExperimentalSystem string `json:"experimental_system"`
	SystemType         string `json:"system_type"`
	PubMedID           string `json:"pubmed_id"`
}

type InteractionsResult struct {
	QueryGene       string `json:"query_gene"`
	InteractionType string `json:"interaction_type"`
	Count           int    `json:"count"`
	Edges           []Edge `json:"edges"`
}

// EdgeListResult is a bare [source, target] adjacency list.
type EdgeListResult struct {
	EdgeList [][2]string `json:"edge_list"`
	Count    int         `json:"count"`
}
