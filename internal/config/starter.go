package config

// StarterConfig is the template written when no config file exists yet.
// Its body is entirely commented out, so parsing it yields the all-defaults
// configuration with no projects. It documents every recognized key and its
// default value.
const StarterConfig = `# pivot configuration
#
# Every section and key is optional. Values shown are the defaults;
# uncomment and edit the lines you want to change.

# [app]
# autoStartAtLogin = false

# [agentLayer]
# enabled = false

# [chrome]
# pinnedTabs = []              # URLs pinned in every project window
# defaultTabs = []             # URLs opened when a project has no saved tabs
# openGitRemote = false        # open the project's git remote as a tab

# [layout]
# smallScreenThreshold = 24    # inches; below this the small-screen layout is used
# windowHeight = 90            # percent of screen height, 1-100
# maxWindowWidth = 18          # inches
# idePosition = "left"         # "left" or "right"
# justification = "right"      # "left" or "right"
# maxGap = 10                  # percent of screen width, 0-100

# Declare one [[project]] block per project. name and path are required.
#
# [[project]]
# name = "My Project"                     # display name; the id is derived from it
# path = "~/src/my-project"
# remote = "ssh-remote+user@host"         # optional remote development target
# color = "blue"                          # "#RRGGBB" or a palette name:
#                                         # red, orange, yellow, green, teal,
#                                         # blue, purple, pink, gray
# agentLayer = false                      # per-project agent-layer override
# pinnedTabs = ["https://github.com"]     # per-project pinned tabs
# defaultTabs = []                        # per-project default tabs
`
