package domain

// VerbPair is one row of the input list: a German verb and its English
// translation. Both fields are non-empty once read from the input file.
type VerbPair struct {
	German  string `json:"de"`
	English string `json:"en"`
}

// Batch is an ordered, fixed-capacity group of verb pairs processed as one
// remote-call unit. The last batch of a run may be shorter than the rest.
type Batch struct {
	// Seq is the 1-based sequence number, unique within a run.
	Seq int

	// Pairs are the verb pairs in original input order.
	Pairs []VerbPair
}

// Size returns the number of verb pairs in the batch.
func (b Batch) Size() int {
	return len(b.Pairs)
}

// Empty returns true if the batch has no verb pairs.
func (b Batch) Empty() bool {
	return len(b.Pairs) == 0
}

// GermanVerbs returns the set of German verbs requested in this batch.
func (b Batch) GermanVerbs() map[string]struct{} {
	verbs := make(map[string]struct{}, len(b.Pairs))
	for _, p := range b.Pairs {
		verbs[p.German] = struct{}{}
	}
	return verbs
}

// BatchResult is the terminal outcome of processing one batch.
// Either Entries is populated (success) or Err records why the batch failed
// after its retry budget was spent.
type BatchResult struct {
	// Seq is the batch sequence number this result belongs to.
	Seq int

	// Entries are the validated entries, in response order. Nil on failure.
	Entries []Entry

	// Attempts is the number of remote attempts made. Zero for a cache hit.
	Attempts int

	// FromCache is true when the entries were served from the cache store
	// without any remote call.
	FromCache bool

	// Err is the last attempt's error when the batch exhausted its retries.
	Err error
}

// Success reports whether the batch produced validated entries.
func (r BatchResult) Success() bool {
	return r.Err == nil
}
