package schedule

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// TaskFile 为声明式任务清单，从 YAML 加载：
//
//	timezone: "+08:00"
//	tasks:
//	  - name: report
//	    schedule: "at(09:00, weekday 7)"
//	  - name: heartbeat
//	    schedule: "interval(30)"
//
// 仅作为构造便利，不持久化任何运行期状态。
type TaskFile struct {
	Timezone string      `yaml:"timezone"`
	Tasks    []TaskEntry `yaml:"tasks"`
}

// TaskEntry 为清单中的一项任务：名称 + 任务字符串。
type TaskEntry struct {
	Name     string `yaml:"name"`
	Schedule string `yaml:"schedule"`
}

// Task 解析本项的任务字符串。
func (e TaskEntry) Task() (Task, error) {
	return Parse(e.Schedule)
}

// LoadTaskFile 读取并校验 YAML 任务清单，任一条目非法即整体失败。
func LoadTaskFile(path string) (*TaskFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schedule: read task file: %w", err)
	}
	f, err := ParseTaskFile(data)
	if err != nil {
		return nil, fmt.Errorf("schedule: task file %s: %w", path, err)
	}
	return f, nil
}

// ParseTaskFile 解析 YAML 任务清单字节。
func ParseTaskFile(data []byte) (*TaskFile, error) {
	var f TaskFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *TaskFile) validate() error {
	if f.Timezone != "" {
		if _, err := f.TimezoneOffset(); err != nil {
			return err
		}
	}
	seen := make(map[string]struct{}, len(f.Tasks))
	for i, e := range f.Tasks {
		if e.Name == "" {
			return fmt.Errorf("task #%d: name is empty", i+1)
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("task %q: duplicate name", e.Name)
		}
		seen[e.Name] = struct{}{}
		if _, err := e.Task(); err != nil {
			return fmt.Errorf("task %q: %w", e.Name, err)
		}
	}
	return nil
}

// TimezoneOffset 解析清单的时区字段（"±HH:MM"），为空返回 UTC。
func (f *TaskFile) TimezoneOffset() (Timezone, error) {
	s := strings.TrimSpace(f.Timezone)
	if s == "" {
		return Timezone{}, nil
	}
	sign := 1
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	}
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return Timezone{}, fmt.Errorf("%w: %q, expected ±HH:MM", ErrInvalidTimezone, f.Timezone)
	}
	hours, err1 := strconv.Atoi(hh)
	minutes, err2 := strconv.Atoi(mm)
	if err1 != nil || err2 != nil || hours < 0 || minutes < 0 {
		return Timezone{}, fmt.Errorf("%w: %q, expected ±HH:MM", ErrInvalidTimezone, f.Timezone)
	}
	return NewTimezoneMinutes(sign * (hours*60 + minutes))
}
