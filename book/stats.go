package book

// Stats are the dashboard counters of a catalog
type Stats struct {
	Total      int
	ByStatus   map[Status]int
	ByCategory map[Category]int
}

// Reading is the number of books currently being read
func (s Stats) Reading() int { return s.ByStatus[Reading] }

// Completed is the number of finished books
func (s Stats) Completed() int { return s.ByStatus[Completed] }

// ComputeStats counts books by status and category
func ComputeStats(list []Book) Stats {
	st := Stats{
		ByStatus:   make(map[Status]int, len(Statuses())),
		ByCategory: make(map[Category]int, len(Categories())),
	}
	for _, s := range Statuses() {
		st.ByStatus[s] = 0
	}
	for _, c := range Categories() {
		st.ByCategory[c] = 0
	}
	for _, b := range list {
		st.Total++
		st.ByStatus[b.Status]++
		st.ByCategory[b.Category]++
	}
	return st
}

// Add merges other into s
func (s Stats) Add(other Stats) Stats {
	out := ComputeStats(nil)
	out.Total = s.Total + other.Total
	for k, v := range s.ByStatus {
		out.ByStatus[k] += v
	}
	for k, v := range other.ByStatus {
		out.ByStatus[k] += v
	}
	for k, v := range s.ByCategory {
		out.ByCategory[k] += v
	}
	for k, v := range other.ByCategory {
		out.ByCategory[k] += v
	}
	return out
}
