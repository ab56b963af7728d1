package schema

import "math"

// Properties is the full ordered catalogue. Entries with AccessNone are
// recognized but never emitted to clients and never written into a
// generated property file.
var Properties = []Def{
	{
		Access: AccessWrite,
		Type:   Bool{Default: true},
		Name:   "allow-flight",
		Label:  "allow-flight",
		Desc:   "Allows users to use flight on the server while in Survival mode, if they have a mod that provides flight installed. In Creative mode this has no effect.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: true},
		Name:   "allow-nether",
		Label:  "allow-nether",
		Desc:   "Allows players to travel to the Nether. false - Nether portals do not work. true - The server allows portals to send players to the Nether.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: true},
		Name:   "broadcast-console-to-ops",
		Label:  "broadcast-console-to-ops",
		Desc:   "Send console command outputs to all online operators.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: true},
		Name:   "broadcast-rcon-to-ops",
		Label:  "broadcast-rcon-to-ops",
		Desc:   "Send rcon console command outputs to all online operators.",
	},
	{
		Access: AccessWrite,
		Type: StrEnum{Default: 1, Members: []Member{
			{Value: "peaceful", Label: "Peaceful"},
			{Value: "easy", Label: "Easy"},
			{Value: "medium", Label: "Medium"},
			{Value: "hard", Label: "Hard"},
		}},
		Name:  "difficulty",
		Label: "difficulty",
		Desc:  "Defines the difficulty (such as damage dealt by mobs and the way hunger and poison affect players) of the server.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: true},
		Name:   "enable-command-block",
		Label:  "enable-command-block",
		Desc:   "Enables command blocks.",
	},
	{
		Access: AccessNone,
		Type:   Bool{Default: false},
		Name:   "enable-jmx-monitoring",
		Label:  "enable-jmx-monitoring",
		Desc:   "Exposes an MBean with the Object name net.minecraft.server:type=Server with attributes exposing the tick times in milliseconds.",
	},
	{
		Access: AccessNone,
		Type:   Bool{Default: false},
		Name:   "enable-rcon",
		Label:  "enable-rcon",
		Desc:   "Enables remote access to the server console. The RCON protocol transfers everything without encryption; exposing it to the Internet is not recommended.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: true},
		Name:   "enable-status",
		Label:  "enable-status",
		Desc:   "Makes the server appear as online on the server list. If set to false it suppresses replies from clients, appearing as offline while still accepting connections.",
	},
	{
		Access: AccessNone,
		Type:   Bool{Default: false},
		Name:   "enable-query",
		Label:  "enable-query",
		Desc:   "Enables the GameSpy4 protocol server listener, used to get information about the server.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: true},
		Name:   "enforce-secure-profile",
		Label:  "enforce-secure-profile",
		Desc:   "If set to true, players without a Mojang-signed public key will not be able to connect to the server.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: false},
		Name:   "enforce-whitelist",
		Label:  "enforce-whitelist",
		Desc:   "Enforces the whitelist on the server. When enabled, online users not on the whitelist get kicked when the server reloads the whitelist file.",
	},
	{
		Access: AccessWrite,
		Type:   Uint{Default: 100, Min: 10, Max: 1000},
		Name:   "entity-broadcast-range-percentage",
		Label:  "entity-broadcast-range-percentage",
		Desc:   "Controls how close entities need to be before being sent to clients, as a percentage of the default. Higher values mean they are rendered from farther away, potentially causing more lag.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: false},
		Name:   "force-gamemode",
		Label:  "force-gamemode",
		Desc:   "Force players to join in the default game mode. false - Players join in the gamemode they left in. true - Players always join in the default gamemode.",
	},
	{
		Access: AccessWrite,
		Type:   Uint{Default: 4, Min: 1, Max: 4},
		Name:   "function-permission-level",
		Label:  "function-permission-level",
		Desc:   "Sets the default permission level for functions.",
	},
	{
		Access: AccessWrite,
		Type: StrEnum{Default: 0, Members: []Member{
			{Value: "survival", Label: "Survival"},
			{Value: "creative", Label: "Creative"},
			{Value: "adventure", Label: "Adventure"},
			{Value: "spectator", Label: "Spectator"},
		}},
		Name:  "gamemode",
		Label: "gamemode",
		Desc:  "Defines the mode of gameplay. If a legacy gamemode number is specified, it is silently converted to a gamemode name.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: true},
		Name:   "generate-structures",
		Label:  "generate-structures",
		Desc:   "Defines whether structures (such as villages) can be generated in new chunks. Dungeons still generate if this is set to false.",
	},
	{
		Access: AccessWrite,
		Type:   String{Default: ""},
		Name:   "generator-settings",
		Label:  "generator-settings",
		Desc:   "The settings used to customize world generation, as a JSON string. Remember to escape all : with \\:.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: false},
		Name:   "hardcore",
		Label:  "hardcore",
		Desc:   "If set to true, server difficulty is ignored and set to hard and players are set to spectator mode if they die.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: false},
		Name:   "hide-online-players",
		Label:  "hide-online-players",
		Desc:   "If set to true, a player list is not sent on status requests.",
	},
	{
		Access: AccessWrite,
		Type:   String{Default: ""},
		Name:   "initial-disabled-packs",
		Label:  "initial-disabled-packs",
		Desc:   "Comma-separated list of datapacks to not be auto-enabled on world creation.",
	},
	{
		Access: AccessWrite,
		Type:   String{Default: "vanilla"},
		Name:   "initial-enabled-packs",
		Label:  "initial-enabled-packs",
		Desc:   "Comma-separated list of datapacks to be enabled during world creation. Feature packs need to be explicitly enabled.",
	},
	{
		Access: AccessNone,
		Type:   String{Default: "world"},
		Name:   "level-name",
		Label:  "level-name",
		Desc:   "The level-name value is used as the world name and its folder name.",
	},
	{
		Access: AccessWrite,
		Type:   String{Default: ""},
		Name:   "level-seed",
		Label:  "level-seed",
		Desc:   "Sets a world seed for the world, as in Singleplayer. The world generates with a random seed if left blank.",
	},
	{
		Access: AccessWrite,
		Type: StrEnum{Default: 0, Members: []Member{
			{Value: "normal", Label: "Normal"},
			{Value: "flat", Label: "Flat"},
			{Value: "large_biomes", Label: "Large Biomes"},
			{Value: "amplified", Label: "Amplified"},
		}},
		Name:  "level-type",
		Label: "level-type",
		Desc:  "Determines the world preset that is generated. normal - Standard world with hills, valleys, water, etc. flat - A flat world with no features. large_biomes - Same as default but all biomes are larger. amplified - Same as default but the world-generation height limit is increased.",
	},
	{
		Access: AccessWrite,
		Type:   Int{Default: 1000000, Min: -1, Max: math.MaxInt64},
		Name:   "max-chained-neighbor-updates",
		Label:  "max-chained-neighbor-updates",
		Desc:   "Limits the amount of consecutive neighbor updates before skipping additional ones. Negative values remove the limit.",
	},
	{
		Access: AccessWrite,
		Type:   Uint{Default: 20, Min: 0, Max: math.MaxUint32},
		Name:   "max-players",
		Label:  "max-players",
		Desc:   "The maximum number of players that can play on the server at the same time. More players consume more resources.",
	},
	{
		Access: AccessWrite,
		Type:   Uint{Default: 60000, Min: 0, Max: math.MaxUint64},
		Name:   "max-tick-time",
		Label:  "max-tick-time",
		Desc:   "The maximum number of milliseconds a single tick may take before the server watchdog forcibly shuts the server down.",
	},
	{
		Access: AccessWrite,
		Type:   Uint{Default: 60000, Min: 0, Max: 29999984},
		Name:   "max-world-size",
		Label:  "max-world-size",
		Desc:   "Sets the maximum possible size in blocks, expressed as a radius, that the world border can obtain.",
	},
	{
		Access: AccessRead,
		Type:   String{Default: ""},
		Name:   "mc-manager-server-version",
		Label:  "mc-manager-server-version",
		Desc:   "A variable for mc-manager, to keep track of what server version this is.",
	},
	{
		Access: AccessRead,
		Type:   Datetime{},
		Name:   "mc-manager-create-time",
		Label:  "mc-manager-create-time",
		Desc:   "A variable for mc-manager, to keep track of when this save was created.",
	},
	{
		Access: AccessRead,
		Type:   Datetime{},
		Name:   "mc-manager-access-time",
		Label:  "mc-manager-access-time",
		Desc:   "A variable for mc-manager, to keep track of when this save was last online.",
	},
	{
		Access: AccessWrite,
		Type:   String{Default: "A Minecraft Server"},
		Name:   "motd",
		Label:  "motd",
		Desc:   "The message displayed in the server list of the client, below the name. Supports color and formatting codes; special characters must be converted to escaped Unicode form.",
	},
	{
		Access: AccessWrite,
		Type:   Uint{Default: 256, Min: 0, Max: math.MaxUint64},
		Name:   "network-compression-threshold",
		Label:  "network-compression-threshold",
		Desc:   "Packets of this many bytes or more get compressed; smaller packets go through normally. Setting a value below 64 is not beneficial, and exceeding the MTU (typically 1500 bytes) is not recommended.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: true},
		Name:   "online-mode",
		Label:  "online-mode",
		Desc:   "Server checks connecting players against the Minecraft account database. Set to false only if the server is not connected to the Internet.",
	},
	{
		Access: AccessWrite,
		Type:   Uint{Default: 4, Min: 0, Max: 4},
		Name:   "op-permission-level",
		Label:  "op-permission-level",
		Desc:   "Sets the default permission level for ops when using /op.",
	},
	{
		Access: AccessWrite,
		Type:   Uint{Default: 0, Min: 0, Max: math.MaxUint64},
		Name:   "player-idle-timeout",
		Label:  "player-idle-timeout",
		Desc:   "If non-zero, players are kicked from the server if they are idle for more than that many minutes.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: false},
		Name:   "prevent-proxy-connections",
		Label:  "prevent-proxy-connections",
		Desc:   "If the ISP/AS sent from the server is different from the one from Mojang Studios' authentication server, the player is kicked.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: false},
		Name:   "previews-chat",
		Label:  "previews-chat",
		Desc:   "If set to true, a server-controlled preview appears above the chat edit box, showing how the message will look when sent.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: true},
		Name:   "pvp",
		Label:  "pvp",
		Desc:   "Enable PvP on the server. Players shooting themselves with arrows receive damage only if PvP is enabled.",
	},
	{
		Access: AccessWrite,
		Type:   Uint{Default: 25565, Min: 1, Max: math.MaxUint16},
		Name:   "query.port",
		Label:  "query.port",
		Desc:   "Sets the port for the query server (see enable-query).",
	},
	{
		Access: AccessWrite,
		Type:   Uint{Default: 0, Min: 0, Max: math.MaxUint64},
		Name:   "rate-limit",
		Label:  "rate-limit",
		Desc:   "Sets the maximum amount of packets a user can send before getting kicked. Setting to 0 disables this feature.",
	},
	{
		Access: AccessNone,
		Type:   String{Default: ""},
		Name:   "rcon.password",
		Label:  "rcon.password",
		Desc:   "Sets the password for RCON, a remote console protocol that allows other applications to connect and interact with the server.",
	},
	{
		Access: AccessNone,
		Type:   Uint{Default: 25575, Min: 1, Max: math.MaxUint16},
		Name:   "rcon.port",
		Label:  "rcon.port",
		Desc:   "Sets the RCON network port.",
	},
	{
		Access: AccessWrite,
		Type:   String{Default: ""},
		Name:   "resource-pack",
		Label:  "resource-pack",
		Desc:   "Optional URI to a resource pack. The player may choose to use it. The : and = characters need to be escaped with a backslash.",
	},
	{
		Access: AccessWrite,
		Type:   String{Default: ""},
		Name:   "resource-pack-prompt",
		Label:  "resource-pack-prompt",
		Desc:   "Optional, adds a custom message to be shown on the resource pack prompt when require-resource-pack is used. Expects chat component syntax.",
	},
	{
		Access: AccessWrite,
		Type:   String{Default: ""},
		Name:   "resource-pack-sha1",
		Label:  "resource-pack-sha1",
		Desc:   "Optional SHA-1 digest of the resource pack, in lowercase hexadecimal, used to verify the integrity of the pack.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: false},
		Name:   "require-resource-pack",
		Label:  "require-resource-pack",
		Desc:   "When enabled, players are prompted for a response and disconnected if they decline the required pack.",
	},
	{
		Access: AccessWrite,
		Type:   String{Default: ""},
		Name:   "server-ip",
		Label:  "server-ip",
		Desc:   "Set this if the server should bind to a particular IP. It is strongly recommended to leave server-ip blank.",
	},
	{
		Access: AccessWrite,
		Type:   Uint{Default: 25565, Min: 1, Max: math.MaxUint16},
		Name:   "server-port",
		Label:  "server-port",
		Desc:   "Changes the port the server is hosting (listening) on. This port must be forwarded if the server is hosted behind NAT.",
	},
	{
		Access: AccessWrite,
		Type:   Uint{Default: 10, Min: 3, Max: 32},
		Name:   "simulation-distance",
		Label:  "simulation-distance",
		Desc:   "Sets the maximum distance from players that living entities may be located in order to be updated by the server, measured in chunks in each direction of the player.",
	},
	{
		Access: AccessNone,
		Type:   Bool{Default: false},
		Name:   "snooper-enabled",
		Label:  "snooper-enabled",
		Desc:   "Sets whether the server sends snoop data regularly to snoop.minecraft.net.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: true},
		Name:   "spawn-animals",
		Label:  "spawn-animals",
		Desc:   "Determines if animals can spawn. true - Animals spawn as normal. false - Animals immediately vanish.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: true},
		Name:   "spawn-monsters",
		Label:  "spawn-monsters",
		Desc:   "Determines if monsters can spawn. This setting has no effect when difficulty is peaceful.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: true},
		Name:   "spawn-npcs",
		Label:  "spawn-npcs",
		Desc:   "Determines whether villagers can spawn.",
	},
	{
		Access: AccessWrite,
		Type:   Uint{Default: 0, Min: 0, Max: math.MaxUint64},
		Name:   "spawn-protection",
		Label:  "spawn-protection",
		Desc:   "Determines the side length of the square spawn protection area as 2x+1. Setting this to 0 disables the spawn protection.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: true},
		Name:   "sync-chunk-writes",
		Label:  "sync-chunk-writes",
		Desc:   "Enables synchronous chunk writes.",
	},
	{
		Access: AccessNone,
		Type:   String{Default: ""},
		Name:   "text-filtering-config",
		Label:  "text-filtering-config",
		Desc:   "Configuration for text filtering.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: true},
		Name:   "use-native-transport",
		Label:  "use-native-transport",
		Desc:   "Linux server performance improvement: optimized packet sending/receiving on Linux.",
	},
	{
		Access: AccessWrite,
		Type:   Uint{Default: 10, Min: 3, Max: 32},
		Name:   "view-distance",
		Label:  "view-distance",
		Desc:   "Sets the amount of world data the server sends the client, measured in chunks in each direction of the player. Determines the server-side viewing distance.",
	},
	{
		Access: AccessWrite,
		Type:   Bool{Default: false},
		Name:   "white-list",
		Label:  "white-list",
		Desc:   "Enables a whitelist on the server. With a whitelist enabled, users not on the whitelist cannot connect.",
	},
}
