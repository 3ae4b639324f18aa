package placement

import (
	"context"

	"starbarcode/internal/services"
)

// placeScript receives the artifact path, page item name and application name
// as argv so none of them need AppleScript quoting.
const placeScript = `on run argv
	set artifactPath to item 1 of argv
	set itemName to item 2 of argv
	set appName to item 3 of argv
	using terms from application "Adobe InDesign CC 2017"
		tell application appName
			if (count of documents) is 0 then error "no document is open"
			tell active document
				if not (exists page item itemName) then error "no page item named " & quoted form of itemName
				place (POSIX file artifactPath) on page item itemName
			end tell
			activate
		end tell
	end using terms from
end run`

// InDesign places artifacts through osascript.
type InDesign struct {
	application string
	osascript   string
	exec        services.Executor
}

// NewInDesign builds an InDesign sink. A nil executor runs real processes.
func NewInDesign(application, osascript string, exec services.Executor) *InDesign {
	if osascript == "" {
		osascript = "osascript"
	}
	if exec == nil {
		exec = services.CommandExecutor{}
	}
	return &InDesign{application: application, osascript: osascript, exec: exec}
}

func (s *InDesign) Place(ctx context.Context, artifactPath, pageItem string) error {
	args := []string{"-e", placeScript, "--", artifactPath, pageItem, s.application}
	return runTool(ctx, s.exec, s.osascript, args)
}
