package compress

// clusterStore accumulates clusters for a single run, keyed by skeleton,
// preserving first-seen order. It lives for one invocation and is
// read-only once rendering starts.
type clusterStore struct {
	index map[string]*Cluster
	order []*Cluster
	cap   int
}

func newClusterStore(exemplarCap int) *clusterStore {
	return &clusterStore{
		index: make(map[string]*Cluster),
		cap:   exemplarCap,
	}
}

// upsert records one line. An unseen skeleton creates a cluster; a repeat
// bumps the count and feeds each placeholder's exemplar list. Lines with
// the same skeleton always carry the same number of values because the
// skeleton encodes the variable columns.
func (s *clusterStore) upsert(skeleton string, values []string) {
	c, ok := s.index[skeleton]
	if !ok {
		c = &Cluster{Skeleton: skeleton, FirstSeen: len(s.order)}
		if len(values) > 0 {
			c.Placeholders = make([]Placeholder, len(values))
			for i := range c.Placeholders {
				c.Placeholders[i].Index = i
			}
		}
		s.index[skeleton] = c
		s.order = append(s.order, c)
	}
	c.Count++
	for i, v := range values {
		s.addExemplar(&c.Placeholders[i], v)
	}
}

// addExemplar appends a value to a placeholder's sample list, skipping
// values already present and stopping at the cap.
func (s *clusterStore) addExemplar(p *Placeholder, value string) {
	if len(p.Values) >= s.cap {
		return
	}
	for _, v := range p.Values {
		if v == value {
			return
		}
	}
	p.Values = append(p.Values, value)
}

func (s *clusterStore) clusters() []*Cluster {
	return s.order
}
