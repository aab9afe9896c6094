package menu

// Item is one menu row for a branch. Identity is Name — the popularity
// map and the avoid filter both key on it.
type Item struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Portion  string `json:"portion"`
	Price    int    `json:"price"`
}

// Popularity maps item name → recent order count over a trailing window.
// Missing names count as zero.
type Popularity map[string]int
