package agent

import (
	"context"
	"time"

	"ocean-server/internal/domain"
	"ocean-server/internal/engine"
	"ocean-server/pkg/api"
	"ocean-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Bot - автопилот для Колумба (Headless Agent).
// Подписывается на хаб как обычный клиент, получает снимки и на каждый
// делает один жадный шаг к сокровищу.
//
// Жизненный цикл:
//  1. NewBot -> регистрация в хабе, получение личного канала (Inbox).
//  2. Run -> цикл в отдельной горутине до отмены контекста или MaxSteps.
//  3. После конца партии бот ждет следующего снимка (например, после рестарта).
type Bot struct {
	ID      string
	Service *engine.GameService // Прямая ссылка на движок (для простоты в этом проекте)
	Inbox   chan api.StateResponse

	Delay    time.Duration // Пауза перед каждым ходом, чтобы за ботом можно было следить
	MaxSteps int           // 0 - без ограничений

	// StopOnGameOver - выйти после конца партии вместо ожидания рестарта
	StopOnGameOver bool

	steps int
}

func NewBot(id string, service *engine.GameService, delay time.Duration, maxSteps int) *Bot {
	return &Bot{
		ID:       id,
		Service:  service,
		Inbox:    service.Hub.Register(id),
		Delay:    delay,
		MaxSteps: maxSteps,
	}
}

// Run запускает цикл жизни бота. Возвращает nil по исчерпании шагов
// или закрытии канала, ctx.Err() при отмене.
func (b *Bot) Run(ctx context.Context) error {
	defer b.Service.Hub.Unregister(b.ID)

	log := b.log()
	log.Info("Autopilot engaged")

	state := b.Service.Snapshot().ToResponse()
	reported := ""

	for {
		if b.MaxSteps > 0 && b.steps >= b.MaxSteps {
			log.WithField("steps", b.steps).Info("Autopilot step limit reached")
			return nil
		}

		if state.Status.IsGameOver {
			if reported != state.SessionID {
				log.WithField("steps", b.steps).Info(state.Status.Message)
				reported = state.SessionID
			}
			if b.StopOnGameOver {
				return nil
			}
		} else {
			dir := Decide(state)
			if err := b.pause(ctx); err != nil {
				return err
			}
			if _, applied := b.Service.ProcessMove(dir.String()); applied {
				b.steps++
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-b.Inbox:
			if !ok {
				log.Info("Autopilot inbox closed")
				return nil
			}
			state = latest(msg, b.Inbox)
		}
	}
}

func (b *Bot) pause(ctx context.Context) error {
	if b.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(b.Delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (b *Bot) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component": "bot",
		"bot_id":    b.ID,
	})
}

// latest вычитывает накопившиеся снимки и возвращает самый свежий
func latest(cur api.StateResponse, inbox chan api.StateResponse) api.StateResponse {
	for {
		select {
		case msg, ok := <-inbox:
			if !ok {
				return cur
			}
			cur = msg
		default:
			return cur
		}
	}
}

// Decide выбирает шаг к сокровищу по кратчайшему пути на торе.
// Сначала главная ось, потом вторая, потом остальные направления.
// Клетки с островами и противниками пропускаются; если заняты все четыре,
// идем по главной оси (остров просто оставит корабль на месте).
func Decide(state api.StateResponse) domain.Direction {
	w, h := state.Map.Width, state.Map.Height
	if w <= 0 || h <= 0 {
		return domain.DirectionNone
	}

	from := domain.Position{X: state.Player.X, Y: state.Player.Y}
	dx := torusDelta(state.Treasure.X-from.X, w)
	dy := torusDelta(state.Treasure.Y-from.Y, h)
	if dx == 0 && dy == 0 {
		return domain.DirectionNone
	}

	blocked := make(map[domain.Position]bool)
	for _, p := range state.Map.Islands {
		blocked[domain.Position{X: p.X, Y: p.Y}] = true
	}
	for _, p := range state.Pirates {
		blocked[domain.Position{X: p.X, Y: p.Y}] = true
	}
	for _, p := range state.Monsters {
		blocked[domain.Position{X: p.X, Y: p.Y}] = true
	}

	order := preference(dx, dy)
	for _, d := range order {
		next := from.Step(d).Wrap(w, h)
		if !blocked[next] {
			return d
		}
	}
	return order[0]
}

// preference - все четыре направления по убыванию полезности
func preference(dx, dy int) []domain.Direction {
	primary := domain.DirectionOf(dx, dy)

	var secondary domain.Direction
	switch primary {
	case domain.DirectionLeft, domain.DirectionRight:
		secondary = domain.DirectionOf(0, dy)
	default:
		secondary = domain.DirectionOf(dx, 0)
	}

	out := []domain.Direction{primary}
	if secondary != domain.DirectionNone {
		out = append(out, secondary)
	}
	for _, d := range []domain.Direction{domain.DirectionUp, domain.DirectionDown, domain.DirectionLeft, domain.DirectionRight} {
		if !contains(out, d) && d != opposite(primary) {
			out = append(out, d)
		}
	}
	return append(out, opposite(primary))
}

func opposite(d domain.Direction) domain.Direction {
	switch d {
	case domain.DirectionUp:
		return domain.DirectionDown
	case domain.DirectionDown:
		return domain.DirectionUp
	case domain.DirectionLeft:
		return domain.DirectionRight
	case domain.DirectionRight:
		return domain.DirectionLeft
	}
	return domain.DirectionNone
}

func contains(list []domain.Direction, d domain.Direction) bool {
	for _, x := range list {
		if x == d {
			return true
		}
	}
	return false
}

// torusDelta - кратчайшее смещение по оси с учетом заворачивания
func torusDelta(d, size int) int {
	d %= size
	if d > size/2 {
		d -= size
	}
	if d < -size/2 {
		d += size
	}
	return d
}
