package domain

// EntityKind - тип подвижной сущности
type EntityKind string

// Типы сущностей
const (
	KindPlayer     EntityKind = "PLAYER"
	KindPirate     EntityKind = "PIRATE"
	KindSeaMonster EntityKind = "SEA_MONSTER"
)

// Entity - общее состояние любого подвижного актора.
// Pos меняется только шагом разрешения хода (и тестовыми хуками).
type Entity struct {
	ID   string     `json:"id"`
	Kind EntityKind `json:"kind"`
	Pos  Position   `json:"pos"`
}

// Subscriber получает новую позицию игрока после каждого его успешного хода
type Subscriber interface {
	OnTargetMoved(target Position)
}

// Player - корабль игрока. Хранит ссылки на подписчиков, но не владеет ими.
type Player struct {
	Entity
	subscribers []Subscriber
}

func NewPlayer(id string, start Position) *Player {
	return &Player{
		Entity: Entity{ID: id, Kind: KindPlayer, Pos: start},
	}
}

// Subscribe добавляет подписчика. Повторная подписка ничего не меняет.
func (p *Player) Subscribe(s Subscriber) {
	for _, existing := range p.subscribers {
		if existing == s {
			return
		}
	}
	p.subscribers = append(p.subscribers, s)
}

// Unsubscribe удаляет подписчика, если он был
func (p *Player) Unsubscribe(s Subscriber) {
	for i, existing := range p.subscribers {
		if existing == s {
			p.subscribers = append(p.subscribers[:i], p.subscribers[i+1:]...)
			return
		}
	}
}

// ClearSubscribers нужен при пересборке сессии, чтобы старые ссылки не пережили рестарт
func (p *Player) ClearSubscribers() {
	p.subscribers = nil
}

func (p *Player) SubscriberCount() int {
	return len(p.subscribers)
}

// Publish синхронно рассылает текущую позицию всем подписчикам в порядке подписки.
// Вызывается ровно один раз за ход, и только если позиция игрока изменилась.
func (p *Player) Publish() {
	for _, s := range p.subscribers {
		s.OnTargetMoved(p.Pos)
	}
}

// Adversary - пиратский корабль или морской монстр.
// Стратегией владеет сам противник; смена стратегии - это замена ссылки.
type Adversary struct {
	Entity
	Class    string           `json:"class"` // PATROL, CHASER, PREDICTIVE_CHASER, SEA_MONSTER
	Strategy MovementStrategy `json:"-"`
	Active   bool             `json:"active"`
}

// OnTargetMoved обновляет цель у стратегий преследования. Патруль уведомление игнорирует.
func (a *Adversary) OnTargetMoved(target Position) {
	if tracker, ok := a.Strategy.(TargetTracker); ok {
		tracker.SetTarget(&target)
	}
}

func (a *Adversary) Activate() {
	a.Active = true
}

func (a *Adversary) Deactivate() {
	a.Active = false
}

// StrategyName - имя текущей стратегии (для логов и debug)
func (a *Adversary) StrategyName() string {
	if a.Strategy == nil {
		return "NONE"
	}
	return a.Strategy.Name()
}
