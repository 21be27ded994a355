/*
	Basic Script that fills a course data file with random records for testing.
*/

package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/0xRadioAc7iv/go-coursedb/core"
	"github.com/0xRadioAc7iv/go-coursedb/internal/record"
)

var (
	subjects  = []string{"Data Structures", "Algorithms", "Operating Systems", "Databases", "Compilers", "Networks", "Graphics"}
	schedules = []string{"MWF", "TR"}
)

const progressEvery = 500

func main() {
	file := flag.String("file", "courses.dat", "Course data file to fill")
	count := flag.Int("count", 1000, "Number of courses to create")
	maxNumber := flag.Int64("max", 5000, "Highest course number to use")
	flag.Parse()

	start := time.Now()

	store, err := core.Open(*file)
	if err != nil {
		fmt.Println("open error:", err)
		return
	}
	defer store.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	created, skipped := 0, 0
	for created < *count && skipped < *count*10 {
		number := rng.Int63n(*maxNumber + 1)
		course := record.Course{
			Name:     fmt.Sprintf("%s %d", subjects[rng.Intn(len(subjects))], number),
			Schedule: schedules[rng.Intn(len(schedules))],
			Hours:    uint32(1 + rng.Intn(5)),
			Size:     uint32(rng.Intn(200)),
		}

		err := store.Create(number, course)
		if errors.Is(err, core.ErrAlreadyExists) {
			skipped++
			continue
		}
		if err != nil {
			fmt.Println("create error:", err)
			return
		}

		created++
		if created%progressEvery == 0 {
			fmt.Printf("created %d courses\n", created)
		}
	}

	fmt.Printf("Created %d courses (%d collisions) in %v\n", created, skipped, time.Since(start))
}
