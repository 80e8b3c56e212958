package persistence

// ManagerRegistry resolves logical manager names to entity managers
type ManagerRegistry interface {
	// ManagerNames lists every registered name in registration order
	ManagerNames() []string

	// Manager returns the entity manager registered under name
	Manager(name string) (EntityManager, error)
}
