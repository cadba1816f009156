package tui

import "strings"

// Scene art stands in for the image pane of the desktop build. Each room's
// content declares a scene key; unknown keys fall back to the starfield.
var scenes = map[string]string{
	"quarters": `
      _________________________
     |  _____              ___ |
     | |     |  z z       |[=]||
     | |BUNK |    z       |[=]||
     | |_____|            |___||
     |        ___________      |
     |       |  TERMINAL |     |
     |_______|___________|_____|`,
	"corridor": `
      ___________________________
     |___|___|___|___|___|___|___|
     =============================
        o     o     o     o    o
     =============================
     |___|___|___|___|___|___|___|`,
	"galley": `
      _________________________
     | (  )  (  )   _______   |
     |  ||    ||   | STOVE |  |
     |  ~~    ~~   |_______|  |
     |   ____________         |
     |  | FOLD TABLE |        |
     |__|____________|________|`,
	"bridge": `
        .  *       .   *    .
      *     .  ________  .
          __/        \__   *
      .  |  o  o  o  o  |  .
         |___.------.___|
         /////|    |\\\\\
        //////|____|\\\\\\`,
	"medbay": `
      _________________________
     |  +   ___________    +  |
     |     |  CABINET  |      |
     |     |___________|      |
     |   ______________       |
     |  |  EXAM BENCH  |      |
     |__|______________|______|`,
	"engineering": `
       _______________________
      | /\/\ DRIVE CORE /\/\ |
      | |==|  |====|   |==|  |
      | |==|  |====|   |==|  |
      |  ||     ||       ||  |
      | ~~~~~ ~~~~~~~ ~~~~~~ |
      |______________________|`,
	"cargo": `
      _________________________
     | []  []      _______    |
     |             | CRATE|   |
     |  _______    |______|   |
     | | CRATE |       __     |
     | |_______|      |__|    |
     |________________________|`,
	"storage": `
      _________________________
     | |¤|¤|¤| |¤|¤|¤| |¤|¤|  |
     | |_|_|_| |_|_|_| |_|_|  |
     | |¤|¤|¤| |¤|¤|¤|        |
     | |_|_|_| |_|_|_|   .    |
     |________________________|`,
	"airlock": `
       ______________________
      | /!\  OUTER DOOR /!\ |
      |  _________________  |
      | |   ( CYCLE )     | |
      | |  [==========]   | |
      |  \_______________/  |
      |______________________|`,
	"starfield": `
        .      *        .
     *      .       *
         .      .        *
       *    .       .
           *     .      *
        .      *     .`,
}

// sceneArt returns the art block for a scene key.
func sceneArt(key string) string {
	art, ok := scenes[key]
	if !ok {
		art = scenes["starfield"]
	}
	return strings.TrimPrefix(art, "\n")
}
