package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
)

const (
	prompt        = "> "
	quit          = "quit"
	indentProject = "     "
	indentTask    = "          "
)

// Console is the line-oriented front end. It runs one command to completion
// before reading the next line.
type Console struct {
	in          *bufio.Scanner
	out         io.Writer
	taskService ports.TaskService
}

func NewConsole(in io.Reader, out io.Writer, taskService ports.TaskService) *Console {
	return &Console{
		in:          bufio.NewScanner(in),
		out:         out,
		taskService: taskService,
	}
}

// Run returns when it reads "quit", the input ends or ctx is cancelled.
// Cancellation also ends a Run that is waiting for the next line.
func (c *Console) Run(ctx context.Context) error {
	c.println("Welcome to TaskList! Type 'help' for available commands.")

	scanCtx, stop := context.WithCancel(ctx)
	defer stop()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go c.scan(scanCtx, lines, scanErr)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.printf("%s", prompt)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			if line == quit {
				return nil
			}
			c.Execute(line)
		}
	}
}

// scan feeds input lines to Run. It stops early once ctx is done; a read
// already blocked on the input only returns when the input does.
func (c *Console) scan(ctx context.Context, lines chan<- string, scanErr chan<- error) {
	defer close(lines)
	for c.in.Scan() {
		select {
		case lines <- strings.TrimRight(c.in.Text(), "\r"):
		case <-ctx.Done():
			scanErr <- ctx.Err()
			return
		}
	}
	scanErr <- c.in.Err()
}

func (c *Console) Execute(line string) {
	command, rest, _ := strings.Cut(line, " ")
	zap.L().Debug("console command", zap.String("command", command))

	switch command {
	case "show":
		c.show()
	case "add":
		c.add(rest)
	case "check":
		c.setDone(rest, true)
	case "uncheck":
		c.setDone(rest, false)
	case "deadline":
		c.deadline(rest)
	case "view-by-deadline":
		c.viewByDeadline()
	case "today":
		c.today()
	case "help":
		c.help()
	default:
		c.printf("I don't know what the command \"%s\" is.\n", command)
	}
}

func (c *Console) show() {
	c.printProjects(c.taskService.AllProjects())
}

func (c *Console) today() {
	c.printProjects(c.taskService.TasksDueToday())
}

func (c *Console) printProjects(projects []domain.Project) {
	for _, project := range projects {
		c.println(project.Name)
		for _, task := range project.Tasks {
			mark := ' '
			if task.Done {
				mark = 'x'
			}
			c.printf("    [%c] %d: %s\n", mark, task.ID, task.Description)
		}
		c.println("")
	}
}

func (c *Console) add(args string) {
	subcommand, rest, _ := strings.Cut(args, " ")
	switch subcommand {
	case "project":
		if strings.TrimSpace(rest) == "" {
			c.println("Usage: add project <project name>")
			return
		}
		c.taskService.AddProject(rest)
	case "task":
		project, description, ok := strings.Cut(rest, " ")
		if !ok || project == "" || strings.TrimSpace(description) == "" {
			c.println("Usage: add task <project name> <task description>")
			return
		}
		if !c.taskService.AddTask(project, description) {
			c.printf("Could not find a project with the name \"%s\".\n", project)
		}
	default:
		c.println("Usage: add project <project name> | add task <project name> <task description>")
	}
}

func (c *Console) setDone(args string, done bool) {
	id, ok := c.parseTaskID(args)
	if !ok {
		return
	}
	if !c.taskService.SetDone(id, done) {
		c.printf("Could not find a task with an ID of %d.\n", id)
	}
}

func (c *Console) deadline(args string) {
	rawID, rawDate, _ := strings.Cut(args, " ")
	id, ok := c.parseTaskID(rawID)
	if !ok {
		return
	}

	date, err := domain.ParseDeadline(strings.TrimSpace(rawDate))
	if err != nil {
		c.println("Invalid date format. Please use dd-MM-yyyy.")
		return
	}

	if !c.taskService.SetDeadline(id, date) {
		c.printf("Could not find a task with an ID of %d.\n", id)
	}
}

func (c *Console) viewByDeadline() {
	groups := c.taskService.ViewByDeadlineGroups()

	for _, group := range groups.ByDeadline {
		c.println(domain.FormatDeadline(group.Deadline) + ":")
		c.printGroupProjects(group.Projects)
		c.println("")
	}

	if len(groups.NoDeadline) > 0 {
		c.println("No deadline:")
		c.printGroupProjects(groups.NoDeadline)
		c.println("")
	}
}

func (c *Console) printGroupProjects(projects []domain.Project) {
	for _, project := range projects {
		c.println(indentProject + project.Name + ":")
		for _, task := range project.Tasks {
			c.printf("%s%d: %s\n", indentTask, task.ID, task.Description)
		}
	}
}

func (c *Console) help() {
	c.println("Commands:")
	c.println("  show")
	c.println("  add project <project name>")
	c.println("  add task <project name> <task description>")
	c.println("  check <task ID>")
	c.println("  uncheck <task ID>")
	c.println("  deadline <task ID> <dd-MM-yyyy>")
	c.println("  view-by-deadline")
	c.println("  today")
	c.println("  quit")
	c.println("")
}

func (c *Console) parseTaskID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		c.println("Task ID must be a number.")
		return 0, false
	}
	return id, true
}

func (c *Console) println(line string) {
	fmt.Fprintln(c.out, line)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
