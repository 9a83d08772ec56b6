package types

// SoundEffect 音效资源ID，对应 data/resources.yaml 中的 sounds 条目
type SoundEffect string

const (
	SoundPistolShot    SoundEffect = "SOUND_PISTOL_SHOT"
	SoundCollectPickup SoundEffect = "SOUND_COLLECT_PICKUP"
	SoundZombieDeath   SoundEffect = "SOUND_ZOMBIE_DEATH"
	SoundZombieGroan1  SoundEffect = "SOUND_ZOMBIE_GROAN1"
	SoundZombieGroan2  SoundEffect = "SOUND_ZOMBIE_GROAN2"
	SoundZombieGroan3  SoundEffect = "SOUND_ZOMBIE_GROAN3"
)

// ZombieGroans 环境氛围音效（随机挑选一个播放）
var ZombieGroans = []SoundEffect{SoundZombieGroan1, SoundZombieGroan2, SoundZombieGroan3}
