package cpu

import (
	"fmt"
	"time"

	"github.com/retroenv/retrogolib/log"

	"github.com/beanboi7/chyp8/emu/screen"
)

const DefaultTickRate = 60

//Display shows a frame on the host
type Display interface {
	Draw(frame screen.Frame) error
}

//KeyEvent is one host key transition for logical key 0x0-0xF
type KeyEvent struct {
	Key  uint8
	Down bool
}

//Input hands pending key transitions to the run loop and tells it when the
//user asked to quit. Poll must not block.
type Input interface {
	Poll() []KeyEvent
	Quit() bool
}

//Clock is the time source of the run loop
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

//SystemClock is the wall clock
var SystemClock Clock = systemClock{}

type RunConfig struct {
	TickRate   int //timer and display rate in Hz, DefaultTickRate if zero
	ClockSpeed int //instructions per second, zero runs unthrottled
	Clock      Clock
	Logger     *log.Logger
	Trace      bool //log every instruction at debug level
}

//Run executes instructions until input reports quit or a step fails. Timers
//and the display are serviced once per tick; key state is sampled after
//every instruction.
func (emu *EMU) Run(display Display, input Input, cfg RunConfig) error {
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock
	}
	rate := cfg.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	tick := time.Second / time.Duration(rate)

	var cycle time.Duration
	if cfg.ClockSpeed > 0 {
		cycle = time.Second / time.Duration(cfg.ClockSpeed)
	}

	lastTick := clock.Now()
	nextCycle := lastTick

	for {
		if cfg.Trace && cfg.Logger != nil {
			emu.trace(cfg.Logger)
		}
		if err := emu.Step(); err != nil {
			return err
		}

		if now := clock.Now(); now.Sub(lastTick) >= tick {
			lastTick = now
			emu.Tick()
			if err := display.Draw(emu.Frame()); err != nil {
				return fmt.Errorf("drawing frame: %w", err)
			}
		}

		for _, ev := range input.Poll() {
			emu.SetKey(ev.Key, ev.Down)
		}
		if input.Quit() {
			return nil
		}

		if cycle > 0 {
			nextCycle = nextCycle.Add(cycle)
			if wait := nextCycle.Sub(clock.Now()); wait > 0 {
				clock.Sleep(wait)
			}
		}
	}
}

func (emu *EMU) trace(logger *log.Logger) {
	opcode, ok := emu.peek()
	if !ok {
		return
	}
	logger.Debug("Executing",
		log.String("pc", fmt.Sprintf("%#03x", emu.pc)),
		log.String("opcode", fmt.Sprintf("%04X", opcode)),
		log.String("mnemonic", Decode(opcode).String()))
}
