// internal/event/types.go
package event

const (
	TowerPlaced      EventType = "TowerPlaced"      // Башня построена
	PlacementRefused EventType = "PlacementRefused" // Не хватило сыра на башню
	ProjectileFired  EventType = "ProjectileFired"  // Башня выпустила снаряд
	EnemyHit         EventType = "EnemyHit"         // Снаряд попал во врага
	EnemyDestroyed   EventType = "EnemyDestroyed"   // Враг уничтожен
	EnemyEscaped     EventType = "EnemyEscaped"     // Враг дошёл до левого края
	WaveStarted      EventType = "WaveStarted"      // Началась новая волна
)
