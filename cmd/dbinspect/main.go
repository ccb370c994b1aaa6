// dbinspect looks into the data store of anglesd
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"bitbucket.org/kleinnic74/geoangles/domain/gps"
	"bitbucket.org/kleinnic74/geoangles/library"
	"bitbucket.org/kleinnic74/geoangles/library/csvio"
	bolt "go.etcd.io/bbolt"
)

var (
	dbName = "geoangles.db"

	dataDir string

	bucket string

	keyAcceptor = func(string) bool { return true }

	exe command

	args []string

	printKey    bool
	printValue  bool
	keyFilter   string
	cultureName string

	commands = []command{
		{"buckets", listBuckets, func() *flag.FlagSet {
			flags := flag.NewFlagSet("buckets", flag.ExitOnError)
			flags.StringVar(&bucket, "b", "", "Bucket to inspect")
			return flags
		}, true},
		{"entries", listEntries, func() *flag.FlagSet {
			cmdEntries := flag.NewFlagSet("entries", flag.ExitOnError)
			cmdEntries.StringVar(&bucket, "b", "waypoints", "Bucket to inspect")
			cmdEntries.BoolVar(&printKey, "k", false, "Output keys")
			cmdEntries.BoolVar(&printValue, "v", false, "Output value")
			cmdEntries.StringVar(&keyFilter, "kf", "", "Key regex filter")
			return cmdEntries
		}, true},
		{"waypoints", listWaypoints, func() *flag.FlagSet {
			flags := flag.NewFlagSet("waypoints", flag.ExitOnError)
			flags.StringVar(&cultureName, "c", "", "Culture used to format angles")
			return flags
		}, true},
		{"export", exportWaypoints, func() *flag.FlagSet {
			flags := flag.NewFlagSet("export", flag.ExitOnError)
			flags.StringVar(&cultureName, "c", "", "Culture used to format angles")
			return flags
		}, true},
		{"deleteBucket", deleteBucket, func() *flag.FlagSet { return nil }, false},
	}
)

func getCommand(args []string) (command, *flag.FlagSet, error) {
	if len(args) == 0 {
		return commands[0], commands[0].flags(), nil
	}
	for i := range commands {
		if args[0] == commands[i].name {
			return commands[i], commands[i].flags(), nil
		}
	}
	return command{}, nil, fmt.Errorf("No such command: %s", args[0])
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [command] [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "[command] is one of\n")
		for _, c := range commands {
			fmt.Fprintf(os.Stderr, "\t%s\n", c.name)
		}
		flag.PrintDefaults()
	}
	flag.StringVar(&dataDir, "d", "geoangles", "Path to data directory")
}

type cmdFunc func(*bolt.Tx) error

type flagSetFunc func() *flag.FlagSet
type command struct {
	name     string
	run      cmdFunc
	flags    flagSetFunc
	readonly bool
}

func listBuckets(tx *bolt.Tx) error {
	if bucket != "" {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return fmt.Errorf("No such bucket: %s", bucket)
		}
		return b.ForEach(func(k, v []byte) error {
			if v == nil {
				fmt.Fprintln(os.Stdout, string(k))
			}
			return nil
		})
	}
	return tx.ForEach(func(name []byte, b *bolt.Bucket) error {
		fmt.Fprintf(os.Stdout, "%s\t%d\n", string(name), b.Stats().KeyN)
		return nil
	})
}

func deleteBucket(tx *bolt.Tx) (err error) {
	for _, b := range args {
		fmt.Fprintf(os.Stderr, "Deleting bucket %s\n", b)
		if err = tx.DeleteBucket([]byte(b)); err != nil {
			return
		}
	}
	return
}

type stats struct {
	count      int
	badKeys    int
	zeroValues int
}

func (s stats) Add(sub stats) (out stats) {
	out.badKeys = s.badKeys + sub.badKeys
	out.count = s.count + sub.count
	out.zeroValues = s.zeroValues + sub.zeroValues
	return
}

func listEntries(tx *bolt.Tx) error {
	if keyFilter != "" {
		keyRE, err := regexp.Compile(keyFilter)
		if err != nil {
			return fmt.Errorf("Bad key filter RE: %w", err)
		}
		keyAcceptor = keyRE.MatchString
	}

	b := tx.Bucket([]byte(bucket))
	if b == nil {
		return fmt.Errorf("No such bucket: %s", bucket)
	}
	s, err := walkBucket(b)
	fmt.Printf("  %d entries\n", s.count)
	fmt.Printf("  %d bad keys\n", s.badKeys)
	fmt.Printf("  %d zero values\n", s.zeroValues)
	return err
}

func walkBucket(b *bolt.Bucket) (s stats, err error) {
	err = b.ForEach(func(k, v []byte) error {
		if !keyAcceptor(string(k)) {
			return nil
		}
		if v == nil {
			sub, err := walkBucket(b.Bucket(k))
			if err != nil {
				return err
			}
			s = s.Add(sub)
		}
		s.count++
		if len(k) == 0 {
			s.badKeys++
		}
		if len(v) == 0 {
			s.zeroValues++
		}
		switch {
		case printKey && printValue:
			fmt.Fprintf(os.Stdout, "%x:%s\n", k, string(v))
		case printKey:
			fmt.Fprintf(os.Stdout, "%x\n", k)
		case printValue:
			fmt.Fprintf(os.Stdout, "%s\n", string(v))
		}
		return nil
	})
	return
}

func decodeWaypoints(tx *bolt.Tx) ([]*library.Waypoint, error) {
	b := tx.Bucket([]byte("waypoints"))
	if b == nil {
		return nil, fmt.Errorf("No such bucket: waypoints")
	}
	var waypoints []*library.Waypoint
	err := b.ForEach(func(k, v []byte) error {
		var w library.Waypoint
		if err := json.Unmarshal(v, &w); err != nil {
			fmt.Fprintf(os.Stderr, "%x: cannot decode: %s\n", k, err)
			return nil
		}
		waypoints = append(waypoints, &w)
		return nil
	})
	return waypoints, err
}

// listWaypoints prints the angles of every stored waypoint
func listWaypoints(tx *bolt.Tx) error {
	culture, err := gps.ParseCulture(cultureName)
	if err != nil {
		return err
	}
	waypoints, err := decodeWaypoints(tx)
	if err != nil {
		return err
	}
	for _, w := range waypoints {
		pos, err := w.Position.Format("", "", culture)
		if err != nil {
			return err
		}
		heading, err := w.Heading.Format("", culture)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%s\t%s\t%s\t%s (%s)\t%s\n", w.ID, w.Name, pos, heading, w.Heading.CompassName(), w.DatumOf())
	}
	return nil
}

func exportWaypoints(tx *bolt.Tx) error {
	culture, err := gps.ParseCulture(cultureName)
	if err != nil {
		return err
	}
	waypoints, err := decodeWaypoints(tx)
	if err != nil {
		return err
	}
	return csvio.Export(os.Stdout, waypoints, culture)
}

func main() {
	flag.Parse()

	var err error
	var flags *flag.FlagSet
	exe, flags, err = getCommand(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		flag.Usage()
		os.Exit(1)
	}
	if flag.NArg() > 0 {
		args = flag.Args()[1:]
	}
	if flags != nil {
		flags.Parse(args)
		args = flags.Args()
	}

	var db *bolt.DB
	dbPath := filepath.Join(dataDir, dbName)
	if db, err = bolt.Open(dbPath, 0600, &bolt.Options{ReadOnly: exe.readonly}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open Bolt DB at %s: %s\n", dbPath, err)
		os.Exit(1)
	}
	defer db.Close()

	if exe.readonly {
		err = db.View(exe.run)
	} else {
		err = db.Update(exe.run)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error while executing: %s\n", err)
		os.Exit(1)
	}
}
