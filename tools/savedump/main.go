package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/angband/angband-sub026/internal/data"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/infrastructure/storage"
)

func main() {
	headerOnly := flag.Bool("header", false, "Print only the file header")
	dataDir := flag.String("data", "", "Directory with monsters.lua/objects.lua (empty: embedded)")
	flag.Usage = printHelp
	flag.Parse()

	if flag.NArg() < 1 {
		printHelp()
		os.Exit(2)
	}
	if err := dump(flag.Arg(0), *headerOnly, *dataDir); err != nil {
		fmt.Fprintln(os.Stderr, "savedump:", err)
		os.Exit(1)
	}
}

func dump(path string, headerOnly bool, dataDir string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	r := bufio.NewReader(f)

	if headerOnly {
		h, err := storage.ReadHeader(r)
		if err != nil {
			return err
		}
		printHeader(h)
		return nil
	}

	save, err := storage.Read(r)
	if err != nil {
		return err
	}
	var reg *domain.Registry
	if dataDir != "" {
		reg, err = data.Load(dataDir)
	} else {
		reg, err = data.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	storage.Attach(save, reg)

	printHeader(save.Header)
	printLevel(save)
	return nil
}

func printHeader(h storage.FileHeader) {
	fmt.Printf("Magic:     %s v%d\n", h.Magic[:], h.Version)
	fmt.Printf("Seed:      %d\n", h.Seed)
	fmt.Printf("Depth:     %d (%d ft)\n", h.Depth, h.Depth*50)
	fmt.Printf("Turn:      %d\n", h.Turn)
	fmt.Printf("Saved at:  %s\n", time.Unix(h.Timestamp, 0).Format(time.RFC3339))
	fmt.Printf("Body:      %d bytes\n", h.BodyLen)
}

func printLevel(save *storage.Save) {
	l := save.Level
	fmt.Printf("Cave:      %dx%d\n", l.Cave.W, l.Cave.H)
	fmt.Printf("RNG calls: %d\n", save.RNGCalls)

	if p := l.Player; p != nil {
		state := "alive"
		if p.IsDead {
			state = "killed by " + p.DiedFrom
		}
		fmt.Printf("Player:    %s, level %d, hp %d/%d at %v (%s)\n", p.Name, p.Lev, p.Chp, p.Mhp, p.Pos, state)
	}
	if save.Replay != nil {
		fmt.Printf("Replay:    %d actions\n", len(save.Replay.Actions))
	}

	counts := make(map[string]int)
	for _, h := range l.Monsters.Handles() {
		counts[l.RaceOf(l.Monster(h)).Name]++
	}
	names := make([]string, 0, len(counts))
	for n := range counts {
		names = append(names, n)
	}
	sort.Strings(names)

	fmt.Printf("\nMonsters:  %d\n", l.Monsters.Len())
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, n := range names {
		fmt.Fprintf(w, "  %s\t%d\n", n, counts[n])
	}
	w.Flush()
	fmt.Printf("Objects:   %d\n", l.Objects.Len())
}

func printHelp() {
	fmt.Println(`savedump - просмотр файла сохранения .angs
Usage:
  savedump [-header] [-data dir] <file.angs>

  -header   только заголовок, без разбора тела
  -data     каталог с monsters.lua/objects.lua (по умолчанию встроенные)`)
}
