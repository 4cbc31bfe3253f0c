package domain

type StoreStats struct {
	Projects int
	Tasks    int
}
