// Package ascii provides ASCII art logos keyed to the detected operating
// system. Logos carry plain text lines plus an ANSI color index; the
// renderer decides whether the tint is applied.
package ascii

import "strings"

// Family groups OS names into logo families.
type Family int

const (
	FamilyGeneric Family = iota
	FamilyLinux
	FamilyMac
	FamilyWindows
)

// Logo is one ASCII-art banner. Tint is a base-16 ANSI color index
// ("0"-"15") applied per line by the renderer when colors are enabled.
type Logo struct {
	Lines []string
	Tint  string
}

// distroTable maps OS-name substrings to a family and logo. Matching is
// case-insensitive, ordered, first match wins; more specific names must
// precede the bare "linux" entry.
var distroTable = []struct {
	substr string
	family Family
	logo   *Logo
}{
	{"ubuntu", FamilyLinux, &ubuntuLogo},
	{"arch", FamilyLinux, &archLogo},
	{"debian", FamilyLinux, &debianLogo},
	{"fedora", FamilyLinux, &fedoraLogo},
	{"alpine", FamilyLinux, &tuxLogo},
	{"mint", FamilyLinux, &tuxLogo},
	{"manjaro", FamilyLinux, &tuxLogo},
	{"suse", FamilyLinux, &tuxLogo},
	{"gentoo", FamilyLinux, &tuxLogo},
	{"red hat", FamilyLinux, &tuxLogo},
	{"centos", FamilyLinux, &tuxLogo},
	{"rocky", FamilyLinux, &tuxLogo},
	{"nixos", FamilyLinux, &tuxLogo},
	{"linux", FamilyLinux, &tuxLogo},
	{"macos", FamilyMac, &appleLogo},
	{"mac os", FamilyMac, &appleLogo},
	{"darwin", FamilyMac, &appleLogo},
	{"windows", FamilyWindows, &windowsLogo},
}

// Classify reports the logo family for an OS name.
func Classify(osName string) Family {
	lower := strings.ToLower(osName)
	for _, entry := range distroTable {
		if strings.Contains(lower, entry.substr) {
			return entry.family
		}
	}
	return FamilyGeneric
}

// Lookup returns the logo for an OS name; unmatched names get the generic
// placeholder.
func Lookup(osName string) Logo {
	lower := strings.ToLower(osName)
	for _, entry := range distroTable {
		if strings.Contains(lower, entry.substr) {
			return *entry.logo
		}
	}
	return genericLogo
}

var ubuntuLogo = Logo{
	Tint: "1",
	Lines: []string{
		`            .-/+oossssoo+/-.`,
		"        `:+ssssssssssssssssss+:`",
		`      -+ssssssssssssssssssyyssss+-`,
		"    .ossssssssssssssssssdMMMNysssso.",
		`   /ssssssssssshdmmNNmmyNMMMMhssssss/`,
		`  +ssssssssshmydMMMMMMMNddddyssssssss+`,
		` /sssssssshNMMMyhhyyyyhmNMMMNhssssssss/`,
		`.ssssssssdMMMNhsssssssssshNMMMdssssssss.`,
		`+sssshhhyNMMNyssssssssssssyNMMMysssssss+`,
		`ossyNMMMNyMMhsssssssssssssshmmmhssssssso`,
		`ossyNMMMNyMMhsssssssssssssshmmmhssssssso`,
		`+sssshhhyNMMNyssssssssssssyNMMMysssssss+`,
		`.ssssssssdMMMNhsssssssssshNMMMdssssssss.`,
		` /sssssssshNMMMyhhyyyyhdNMMMNhssssssss/`,
		`  +sssssssssdmydMMMMMMMMddddyssssssss+`,
		`   /ssssssssssshdmNNNNmyNMMMMhssssss/`,
		"    .ossssssssssssssssssdMMMNysssso.",
		`      -+sssssssssssssssssyyyssss+-`,
		"        `:+ssssssssssssssssss+:`",
		`            .-/+oossssoo+/-.`,
	},
}

var archLogo = Logo{
	Tint: "6",
	Lines: []string{
		`                  -`,
		`                 .o+`,
		"                `ooo/",
		"               `+oooo:",
		"              `+oooooo:",
		`              -+oooooo+:`,
		"            `/:-:++oooo+:",
		"           `/++++/+++++++:",
		"          `/++++++++++++++:",
		"         `/+++ooooooooooooo/`",
		"        ./ooosssso++osssssso+`",
		"       .oossssso-````/ossssss+`",
		"      -osssssso.      :ssssssso.",
		`     :osssssss/        osssso+++.`,
		"    /ossssssss/        +ssssooo/-",
		"  `/ossssso+/:-        -:/+osssso+-",
		" `+sso+:-`                 `.-/+oso:",
		"`++:.                           `-/+/",
		".`                                 `/",
	},
}

var debianLogo = Logo{
	Tint: "1",
	Lines: []string{
		"       _,met$$$$$gg.",
		`    ,g$$$$$$$$$$$$$$$P.`,
		`  ,g$$P"     """Y$$.".`,
		` ,$$P'              ` + "`$$$.",
		`',$$P       ,ggs.     ` + "`$$b:",
		"`d$$'     ,$P\"'   .    $$$",
		` $$P      d$'     ,    $$P`,
		" $$:      $$.   -    ,d$$'",
		` $$;      Y$b._   _,d$P'`,
		` Y$$.    ` + "`.`\"Y$$$$P\"'",
		" `$$b      \"-.__",
		"  `Y$$",
		"   `Y$$.",
		"     `$$b.",
		"       `Y$$b.",
		"          `\"Y$b._",
		`              """"`,
	},
}

var fedoraLogo = Logo{
	Tint: "4",
	Lines: []string{
		`             .',;::::;,'.`,
		`         .';:cccccccccccc:;,.`,
		`      .;cccccccccccccccccccccc;.`,
		`    .:cccccccccccccccccccccccccc:.`,
		`  .;ccccccccccccc;.:dddl:.;ccccccc;.`,
		` .:ccccccccccccc;OWMKOOXMWd;ccccccc:.`,
		`.:ccccccccccccc;KMMc;cc;xMMc;ccccccc:.`,
		`,cccccccccccccc;MMM.;cc;;WW:;cccccccc,`,
		`:cccccccccccccc;MMM.;cccccccccccccccc:`,
		`:ccccccc;oxOOOo;MMM000k.;cccccccccccc:`,
		`cccccc;0MMKxdd:;MMMkddc.;cccccccccccc;`,
		`ccccc;XMO';cccc;MMM.;cccccccccccccccc'`,
		`ccccc;MMo;ccccc;MMW.;ccccccccccccccc;`,
		`ccccc;0MNc.ccc.xMMd;ccccccccccccccc;`,
		`cccccc;dNMWXXXWM0:;cccccccccccccc:,`,
		`cccccccc;.:odl:.;cccccccccccccc:,.`,
		`ccccccccccccccccccccccccccccc:'.`,
		`:ccccccccccccccccccccccc:;,..`,
		" ':cccccccccccccccc::;,.",
	},
}

var tuxLogo = Logo{
	Tint: "3",
	Lines: []string{
		"         _nnnn_",
		"        dGGGGMMb",
		"       @p~qp~~qMb",
		"       M|@||@) M|",
		"       @,----.JM|",
		"      JS^\\__/  qKL",
		"     dZP        qKRb",
		"    dZP          qKKb",
		"   fZP            SMMb",
		"   HZM            MMMM",
		"   FqM            MMMM",
		" __| \".        |\\dS\"qML",
		" |    `.       | `' \\Zq",
		"_)      \\.___.,|     .'",
		"\\____   )MMMMMP|   .'",
		"     `-'       `--'",
	},
}

var appleLogo = Logo{
	Tint: "7",
	Lines: []string{
		`                    'c.`,
		`                 ,xNMM.`,
		`               .OMMMMo`,
		`               OMMM0,`,
		`     .;loddo:' loolloddol;.`,
		`   cKMMMMMMMMMMNWMMMMMMMMMM0:`,
		` .KMMMMMMMMMMMMMMMMMMMMMMMWd.`,
		` XMMMMMMMMMMMMMMMMMMMMMMMX.`,
		`;MMMMMMMMMMMMMMMMMMMMMMMM:`,
		`:MMMMMMMMMMMMMMMMMMMMMMMM:`,
		`.MMMMMMMMMMMMMMMMMMMMMMMMX.`,
		` kMMMMMMMMMMMMMMMMMMMMMMMMWd.`,
		` .XMMMMMMMMMMMMMMMMMMMMMMMMMMk`,
		`  .XMMMMMMMMMMMMMMMMMMMMMMMMK.`,
		`    kMMMMMMMMMMMMMMMMMMMMMMd`,
		`     ;KMMMMMMMWXXWMMMMMMMk.`,
		`       .cooc,.    .,coo:.`,
	},
}

var windowsLogo = Logo{
	Tint: "6",
	Lines: []string{
		`                               ..,,`,
		`                    ....,,:;+ccllll`,
		`      ...,,+:;  cllllllllllllllllll`,
		`,cclllllllllll  lllllllllllllllllll`,
		`llllllllllllll  lllllllllllllllllll`,
		`llllllllllllll  lllllllllllllllllll`,
		`llllllllllllll  lllllllllllllllllll`,
		`llllllllllllll  lllllllllllllllllll`,
		``,
		`llllllllllllll  lllllllllllllllllll`,
		`llllllllllllll  lllllllllllllllllll`,
		`llllllllllllll  lllllllllllllllllll`,
		`llllllllllllll  lllllllllllllllllll`,
		`llllllllllllll  lllllllllllllllllll`,
		"`'ccllllllllll  lllllllllllllllllll",
	},
}

var genericLogo = Logo{
	Tint: "7",
	Lines: []string{
		`        #####`,
		`       #######`,
		`       ##?O?##`,
		`       #######`,
		`     ###########`,
		`    #############`,
		`   ###############`,
		`   ################`,
		`  #################`,
		`  ##################`,
		`  ##################`,
		`   ################`,
		`    ##############`,
		`      ##########`,
	},
}
