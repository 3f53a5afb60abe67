// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypesapi

// The registry table, in declaration order. Lookups that match more than one row return the first.
//
// GUIDs come from:
// - https://en.wikipedia.org/wiki/GUID_Partition_Table#Partition_type_GUIDs
// - https://uapi-group.org/specifications/specs/discoverable_partitions_specification/
// - Android/Qualcomm vendor partition tables (the ANDROID_<n> rows).
//
// A few vendor rows reuse a GUID that an earlier row already claims (for example, ANDROID_4 reuses
// the Microsoft basic data GUID). They are kept so that they remain discoverable by name and by
// DuplicateGUIDs, but they never win a GUID lookup.
var registry = []Entry{
	{"UNUSED", "Unused entry", "00000000-0000-0000-0000-000000000000", OperatingSystemNone},
	{"MBR", "MBR Partition Scheme", "024DEE41-33E7-11D3-9D69-0008C781F39F", OperatingSystemNone},
	{"EFI", "EFI System Partition", "C12A7328-F81F-11D2-BA4B-00A0C93EC93B", OperatingSystemNone},
	{"BIOS", "BIOS Boot Partition", "21686148-6449-6E6F-744E-656564454649", OperatingSystemNone},
	{"FLASH", "Intel Fast Flash (iFFS) Partition", "D3BFE2DE-3DAF-11DF-BA40-E3A556D89593", OperatingSystemNone},
	{"SONY_BOOT", "Sony Boot Partition", "F4019732-066E-4E12-8273-346C5641494F", OperatingSystemNone},
	{"LENOVO_BOOT", "Lenovo Boot Partition", "BFBFAFE7-A34F-448A-9A5B-6213EB736C22", OperatingSystemNone},
	{"MICROSOFT_RESERVED", "Microsoft Reserved Partition", "E3C9E316-0B5C-4DB8-817D-F92DF00215AE", OperatingSystemWindows},
	{"BASIC", "Basic Data Partition", "EBD0A0A2-B9E5-4433-87C0-68B6B72699C7", OperatingSystemWindows},
	{"WINDOWS_METADATA", "Logical Disk Manager Metadata Partition", "5808C8AA-7E8F-42E0-85D2-E1E90434CFB3", OperatingSystemWindows},
	{"WINDOWS_DATA", "Logical Disk Manager Data Partition", "AF9B60A0-1431-4F62-BC68-3311714A69AD", OperatingSystemWindows},
	{"WINDOWS_RECOVERY", "Windows Recovery Environment", "DE94BBA4-06D1-4D40-A16A-BFD50179D6AC", OperatingSystemWindows},
	{"WINDOWS_PARALLEL", "IBM General Parallel File System Partition", "37AFFC90-EF7D-4E96-91C3-2D7AE055B174", OperatingSystemWindows},
	{"WINDOWS_STORAGESPACES", "Storage Spaces Partition", "E75CAF8F-F680-4CEE-AFA3-B001E56EFC2D", OperatingSystemWindows},
	{"HPUNIX_DATA", "HP Unix Data Partition", "75894C1E-3AEB-11D3-B7C1-7B03A0000000", OperatingSystemHpUnix},
	{"HPUNIX_SERVICE", "HP Unix Service Partition", "E2A1E728-32E3-11D6-A682-7B03A0000000", OperatingSystemHpUnix},
	{"LINUX_FS", "Linux Filesystem Data", "0FC63DAF-8483-4772-8E79-3D69D8477DE4", OperatingSystemLinux},
	{"LINUX_RAID", "Linux RAID Partition", "A19D880F-05FC-4D3B-A006-743F0F84911E", OperatingSystemLinux},
	{"LINUX_ROOT_X86", "Linux Root Partition (x86)", "44479540-F297-41B2-9AF7-D131D5F0458A", OperatingSystemLinux},
	{"LINUX_ROOT_X64", "Linux Root Partition (x86-64)", "4F68BCE3-E8CD-4DB1-96E7-FBCAF984B709", OperatingSystemLinux},
	{"LINUX_ROOT_ARM_32", "Linux Root Partition (32-bit ARM)", "69DAD710-2CE4-4E3C-B16C-21A1D49ABED3", OperatingSystemLinux},
	{"LINUX_ROOT_ARM_64", "Linux Root Partition (64-bit ARM/AArch64)", "B921B045-1DF0-41C3-AF44-4C6F280D3FAE", OperatingSystemLinux},
	{"LINUX_SWAP", "Linux Swap Partition", "0657FD6D-A4AB-43C4-84E5-0933C84B4F4F", OperatingSystemLinux},
	{"LINUX_LVM", "Linux Logical Volume Manager Partition", "E6D6D379-F507-44C2-A23C-238F2A3DF928", OperatingSystemLinux},
	{"LINUX_HOME", "Linux /home Partition", "933AC7E1-2EB4-4F13-B844-0E14E2AEF915", OperatingSystemLinux},
	{"LINUX_SRV", "Linux /srv (Server Data) Partition", "3B8F8425-20E0-4F3B-907F-1A25A76F98E8", OperatingSystemLinux},
	{"LINUX_DMCRYPT", "Linux Plain dm-crypt Partition", "7FFEC5C9-2D00-49B7-8941-3EA10A5586B7", OperatingSystemLinux},
	{"LINUX_LUKS", "Linux LUKS Partition", "CA7D7CCB-63ED-4C53-861C-1742536059CC", OperatingSystemLinux},
	{"LINUX_RESERVED", "Linux Reserved", "8DA63339-0007-60C0-C436-083AC8230908", OperatingSystemLinux},
	{"FREEBSD_DATA", "FreeBSD Data Partition", "516E7CB4-6ECF-11D6-8FF8-00022D09712B", OperatingSystemFreeBsd},
	{"FREEBSD_BOOT", "FreeBSD Boot Partition", "83BD6B9D-7F41-11DC-BE0B-001560B84F0F", OperatingSystemFreeBsd},
	{"FREEBSD_SWAP", "FreeBSD Swap Partition", "516E7CB5-6ECF-11D6-8FF8-00022D09712B", OperatingSystemFreeBsd},
	{"FREEBSD_UFS", "FreeBSD Unix File System (UFS) Partition", "516E7CB6-6ECF-11D6-8FF8-00022D09712B", OperatingSystemFreeBsd},
	{"FREEBSD_VINIUM", "FreeBSD Vinium Volume Manager Partition", "516E7CB8-6ECF-11D6-8FF8-00022D09712B", OperatingSystemFreeBsd},
	{"FREEBSD_ZFS", "FreeBSD ZFS Partition", "516E7CBA-6ECF-11D6-8FF8-00022D09712B", OperatingSystemFreeBsd},
	{"MACOS_HFSPLUS", "Apple Hierarchical File System Plus (HFS+) Partition", "48465300-0000-11AA-AA11-00306543ECAC", OperatingSystemMacOs},
	{"MACOS_UFS", "Apple UFS", "55465300-0000-11AA-AA11-00306543ECAC", OperatingSystemMacOs},
	{"MACOS_ZFS", "Apple ZFS", "6A898CC3-1DD2-11B2-99A6-080020736631", OperatingSystemMacOs},
	{"MACOS_RAID", "Apple RAID Partition", "52414944-0000-11AA-AA11-00306543ECAC", OperatingSystemMacOs},
	{"MACOS_RAID_OFFLINE", "Apple RAID Partition, offline", "52414944-5F4F-11AA-AA11-00306543ECAC", OperatingSystemMacOs},
	{"MACOS_RECOVERY", "Apple Boot Partition (Recovery HD)", "426F6F74-0000-11AA-AA11-00306543ECAC", OperatingSystemMacOs},
	{"MACOS_LABEL", "Apple Label", "4C616265-6C00-11AA-AA11-00306543ECAC", OperatingSystemMacOs},
	{"MACOS_TV_RECOVERY", "Apple TV Recovery Partition", "5265636F-7665-11AA-AA11-00306543ECAC", OperatingSystemMacOs},
	{"MACOS_CORE", "Apple Core Storage Partition", "53746F72-6167-11AA-AA11-00306543ECAC", OperatingSystemMacOs},
	{"MACOS_SOFTRAID_STATUS", "Apple SoftRAID_Status", "B6FA30DA-92D2-4A9A-96F1-871EC6486200", OperatingSystemMacOs},
	{"MACOS_SOFTRAID_SCRATCH", "Apple SoftRAID_Scratch", "2E313465-19B9-463F-8126-8A7993773801", OperatingSystemMacOs},
	{"MACOS_SOFTRAID_VOLUME", "Apple SoftRAID_Volume", "FA709C7E-65B1-4593-BFD5-E71D61DE9B02", OperatingSystemMacOs},
	{"MACOS_SOFTRAID_CACHE", "Apple SoftRAID_Cache", "BBBA6DF5-F46F-4A89-8F59-8765B2727503", OperatingSystemMacOs},
	{"MACOS_APFS", "Apple APFS", "7C3457EF-0000-11AA-AA11-00306543ECAC", OperatingSystemMacOs},
	{"SOLARIS_BOOT", "Solaris Boot Partition", "6A82CB45-1DD2-11B2-99A6-080020736631", OperatingSystemSolaris},
	{"SOLARIS_ROOT", "Solaris Root Partition", "6A85CF4D-1DD2-11B2-99A6-080020736631", OperatingSystemSolaris},
	{"SOLARIS_SWAP", "Solaris Swap Partition", "6A87C46F-1DD2-11B2-99A6-080020736631", OperatingSystemSolaris},
	{"SOLARIS_BACKUP", "Solaris Backup Partition", "6A8B642B-1DD2-11B2-99A6-080020736631", OperatingSystemSolaris},
	{"SOLARIS_VAR", "Solaris /var Partition", "6A8EF2E9-1DD2-11B2-99A6-080020736631", OperatingSystemSolaris},
	{"SOLARIS_HOME", "Solaris /home Partition", "6A90BA39-1DD2-11B2-99A6-080020736631", OperatingSystemSolaris},
	{"SOLARIS_ALT", "Solaris Alternate Sector", "6A9283A5-1DD2-11B2-99A6-080020736631", OperatingSystemSolaris},
	{"SOLARIS_RESERVED1", "Solaris Reserved", "6A945A3B-1DD2-11B2-99A6-080020736631", OperatingSystemSolaris},
	{"SOLARIS_RESERVED2", "Solaris Reserved", "6A9630D1-1DD2-11B2-99A6-080020736631", OperatingSystemSolaris},
	{"SOLARIS_RESERVED3", "Solaris Reserved", "6A980767-1DD2-11B2-99A6-080020736631", OperatingSystemSolaris},
	{"SOLARIS_RESERVED4", "Solaris Reserved", "6A96237F-1DD2-11B2-99A6-080020736631", OperatingSystemSolaris},
	{"SOLARIS_RESERVED5", "Solaris Reserved", "6A8D2AC7-1DD2-11B2-99A6-080020736631", OperatingSystemSolaris},
	{"NETBSD_SWAP", "NetBSD Swap Partition", "49F48D32-B10E-11DC-B99B-0019D1879648", OperatingSystemNetBsd},
	{"NETBSD_FFS", "NetBSD FFS Partition", "49F48D5A-B10E-11DC-B99B-0019D1879648", OperatingSystemNetBsd},
	{"NETBSD_LFS", "NetBSD LFS Partition", "49F48D82-B10E-11DC-B99B-0019D1879648", OperatingSystemNetBsd},
	{"NETBSD_RAID", "NetBSD RAID Partition", "49F48DAA-B10E-11DC-B99B-0019D1879648", OperatingSystemNetBsd},
	{"NETBSD_CONCAT", "NetBSD Concatenated Partition", "2DB519C4-B10F-11DC-B99B-0019D1879648", OperatingSystemNetBsd},
	{"NETBSD_ENCRYPTED", "NetBSD Encrypted Partition", "2DB519EC-B10F-11DC-B99B-0019D1879648", OperatingSystemNetBsd},
	{"CHROME_KERNEL", "ChromeOS Kernel", "FE3A2A5D-4F32-41A7-B725-ACCC3285A309", OperatingSystemChrome},
	{"CHROME_ROOTFS", "ChromeOS rootfs", "3CB8E202-3B7E-47DD-8A3C-7FF2A13CFCEC", OperatingSystemChrome},
	{"CHROME_FUTURE", "ChromeOS Future Use", "2E0A753D-9E48-43B0-8337-B15192CB1B5E", OperatingSystemChrome},
	{"COREOS_USR", "CoreOS /usr partition (coreos-usr)", "5DFBF5F4-2848-4BAC-AA5E-0D9A20B745A6", OperatingSystemCoreOs},
	{"COREOS_ROOTFS_RESIZE", "CoreOS Resizable rootfs (coreos-resize)", "3884DD41-8582-4404-B9A8-E9B84F2DF50E", OperatingSystemCoreOs},
	{"COREOS_OEM", "CoreOS OEM customizations (coreos-reserved)", "C95DC21A-DF0E-4340-8D7B-26CBFA9A03E0", OperatingSystemCoreOs},
	{"COREOS_ROOT_RAID", "CoreOS Root filesystem on RAID (coreos-root-raid)", "BE9067B9-EA49-4F15-B4F6-F36F8C9E1818", OperatingSystemCoreOs},
	{"HAIKU_BFS", "Haiku BFS", "42465331-3BA3-10F1-802A-4861696B7521", OperatingSystemHaiku},
	{"MIDNIGHT_BOOT", "MidnightBSD Boot Partition", "85D5E45E-237C-11E1-B4B3-E89A8F7FC3A7", OperatingSystemMidnightBsd},
	{"MIDNIGHT_DATA", "MidnightBSD Data Partition", "85D5E45A-237C-11E1-B4B3-E89A8F7FC3A7", OperatingSystemMidnightBsd},
	{"MIDNIGHT_SWAP", "MidnightBSD Swap Partition", "85D5E45B-237C-11E1-B4B3-E89A8F7FC3A7", OperatingSystemMidnightBsd},
	{"MIDNIGHT_UFS", "MidnightBSD Unix File System (UFS) Partition", "0394EF8B-237E-11E1-B4B3-E89A8F7FC3A7", OperatingSystemMidnightBsd},
	{"MIDNIGHT_VINIUM", "MidnightBSD Vinium Volume Manager Partition", "85D5E45C-237C-11E1-B4B3-E89A8F7FC3A7", OperatingSystemMidnightBsd},
	{"MIDNIGHT_ZFS", "MidnightBSD ZFS Partition", "85D5E45D-237C-11E1-B4B3-E89A8F7FC3A7", OperatingSystemMidnightBsd},
	{"CEPH_JOURNAL", "Ceph Journal", "45B0969E-9B03-4F30-B4C6-B4B80CEFF106", OperatingSystemCeph},
	{"CEPH_CRYPT_JOURNAL", "Ceph dm-crypt Encrypted Journal", "45B0969E-9B03-4F30-B4C6-5EC00CEFF106", OperatingSystemCeph},
	{"CEPH_OSD", "Ceph OSD", "4FBD7E29-9D25-41B8-AFD0-062C0CEFF05D", OperatingSystemCeph},
	{"CEPH_CRYPT", "Ceph dm-crypt OSD", "4FBD7E29-9D25-41B8-AFD0-5EC00CEFF05D", OperatingSystemCeph},
	{"CEPH_DISK_CREATION", "Ceph Disk In Creation", "89C57F98-2FE5-4DC0-89C1-F3AD0CEFF2BE", OperatingSystemCeph},
	{"CEPH_CRYPT_CREATION", "Ceph dm-crypt Disk In Creation", "89C57F98-2FE5-4DC0-89C1-5EC00CEFF2BE", OperatingSystemCeph},
	{"OPENBSD_DATA", "OpenBSD Data Partition", "824CC7A0-36A8-11E3-890A-952519AD3F61", OperatingSystemOpenBsd},
	{"QNX_FS", "QNX Power-safe (QNX6) File System", "CEF5A9AD-73BC-4601-89F3-CDEEEEE321A1", OperatingSystemQnx},
	{"PLAN9_PART", "Plan 9 Partition", "C91818F9-8025-47AF-89D2-F030D7000C2C", OperatingSystemPlan9},
	{"VMWARE_COREDUMP", "VMWare vmkcore (coredump partition)", "9D275380-40AD-11DB-BF97-000C2911D1B8", OperatingSystemVmWare},
	{"VMWARE_VMFS", "VMWare VMFS Filesystem Partition", "AA31E02A-400F-11DB-9590-000C2911D1B8", OperatingSystemVmWare},
	{"VMWARE_RESERVED", "VMware Reserved", "9198EFFC-31C0-11DB-8F78-000C2911D1B8", OperatingSystemVmWare},
	{"ANDROID_BOOTLOADER", "Android Bootloader", "2568845D-2332-4675-BC39-8FA5A4748D15", OperatingSystemAndroid},
	{"ANDROID_BOOTLOADER2", "Android Bootloader2", "114EAFFE-1552-4022-B26E-9B053604CF84", OperatingSystemAndroid},
	{"ANDROID_BOOT", "Android Boot", "49A4D17F-93A3-45C1-A0DE-F50B2EBE2599", OperatingSystemAndroid},
	{"ANDROID_RECOVERY", "Android Recovery", "4177C722-9E92-4AAB-8644-43502BFD5506", OperatingSystemAndroid},
	{"ANDROID_MISC", "Android Misc", "EF32A33B-A409-486C-9141-9FFB711F6266", OperatingSystemAndroid},
	{"ANDROID_META", "Android Metadata", "20AC26BE-20B7-11E3-84C5-6CFDB94711E9", OperatingSystemAndroid},
	{"ANDROID_SYSTEM", "Android System", "38F428E6-D326-425D-9140-6E0EA133647C", OperatingSystemAndroid},
	{"ANDROID_CACHE", "Android Cache", "A893EF21-E428-470A-9E55-0668FD91A2D9", OperatingSystemAndroid},
	{"ANDROID_DATA", "Android Data", "DC76DDA9-5AC1-491C-AF42-A82591580C0D", OperatingSystemAndroid},
	{"ANDROID_PERSISTENT", "Android Persistent", "EBC597D0-2053-4B15-8B64-E0AAC75F4DB1", OperatingSystemAndroid},
	{"ANDROID_FACTORY", "Android Factory", "8F68CC74-C5E5-48DA-BE91-A0C8C15E9C80", OperatingSystemAndroid},
	{"ANDROID_FASTBOOT", "Android Fastboot/Tertiary", "767941D0-2085-11E3-AD3B-6CFDB94711E9", OperatingSystemAndroid},
	{"ANDROID_OEM", "Android OEM", "AC6D7924-EB71-4DF8-B48D-E267B27148FF", OperatingSystemAndroid},
	{"ONIE_BOOT", "ONIE Boot", "7412F7D5-A156-4B13-81DC-867174929325", OperatingSystemOnie},
	{"ONIE_CONFIG", "ONIE Config", "D4E6E2CD-4469-46F3-B5CB-1BFF57AFC149", OperatingSystemOnie},
	{"PPC_BOOT", "PowerPC PReP Boot", "9E1A2D38-C612-4316-AA26-8B49521E5A8B", OperatingSystemPowerPc},
	{"FREEDESK_BOOT", "FreeDesktop Shared Boot Loader Configuration", "BC13C2FF-59E6-4262-A352-B275FD6F7172", OperatingSystemFreeDesktop},
	{"ATARI_DATA", "Atari Basic Data Partition (GEM, BGM, F32)", "734E5AFE-F61A-11E6-BC64-92361F002671", OperatingSystemAtari},
	{"ANDROID_1", "Android vendor-specific partition", "D69E90A5-4CAB-0071-F6DF-AB977F141A7F", OperatingSystemAndroid},
	{"ANDROID_2", "Android vendor-specific partition", "A053AA7F-40B8-4B1C-BA08-2F68AC71A4F4", OperatingSystemAndroid},
	{"ANDROID_3", "Android vendor-specific partition", "E1A6A689-0C8D-4CC6-B4E8-55A4320FBD8A", OperatingSystemAndroid},
	{"ANDROID_4", "Android vendor-specific partition", "EBD0A0A2-B9E5-4433-87C0-68B6B72699C7", OperatingSystemAndroid},
	{"ANDROID_5", "Android vendor-specific partition", "6CB747F1-C2EF-4092-ADD0-CA39F79C7AF4", OperatingSystemAndroid},
	{"ANDROID_6", "Android vendor-specific partition", "EA02D680-8712-4552-A3BE-E6087829C1E6", OperatingSystemAndroid},
	{"ANDROID_7", "Android vendor-specific partition", "3878408A-E263-4B67-B878-6340B35B11E3", OperatingSystemAndroid},
	{"ANDROID_8", "Android vendor-specific partition", "BD6928A1-4CE0-A038-4F3A-1495E3EDDFFB", OperatingSystemAndroid},
	{"ANDROID_9", "Android vendor-specific partition", "7EFE5010-2A1A-4A1A-B8BC-990257813512", OperatingSystemAndroid},
	{"ANDROID_10", "Android vendor-specific partition", "A11D2A7C-D82A-4C2F-8A01-1805240E6626", OperatingSystemAndroid},
	{"ANDROID_11", "Android vendor-specific partition", "20117F86-E985-4357-B9EE-374BC1D8487D", OperatingSystemAndroid},
	{"ANDROID_12", "Android vendor-specific partition", "73471795-AB54-43F9-A847-4F72EA5CBEF5", OperatingSystemAndroid},
	{"ANDROID_13", "Android vendor-specific partition", "8EA64893-1267-4A1B-947C-7C362ACAAD2C", OperatingSystemAndroid},
	{"ANDROID_14", "Android vendor-specific partition", "F65D4B16-343D-4E25-AAFC-BE99B6556A6D", OperatingSystemAndroid},
	{"ANDROID_15", "Android vendor-specific partition", "21D1219F-2ED1-4AB4-930A-41A16AE75F7F", OperatingSystemAndroid},
	{"ANDROID_16", "Android vendor-specific partition", "97D7B011-54DA-4835-B3C4-917AD6E73D74", OperatingSystemAndroid},
	{"ANDROID_17", "Android vendor-specific partition", "4B7A15D6-322C-42AC-8110-88B7DA0C5D77", OperatingSystemAndroid},
	{"ANDROID_18", "Android vendor-specific partition", "24D0D418-D31D-4D8D-AC2C-4D4305188450", OperatingSystemAndroid},
	{"ANDROID_19", "Android vendor-specific partition", "77036CD4-03D5-42BB-8ED1-37E5A88BAA34", OperatingSystemAndroid},
	{"ANDROID_20", "Android vendor-specific partition", "02DB45FE-AD1B-4CB6-AECC-0042C637DEFA", OperatingSystemAndroid},
	{"ANDROID_21", "Android vendor-specific partition", "9AD51E4D-3088-43EA-8EC7-991AD619F88E", OperatingSystemAndroid},
	{"ANDROID_22", "Android vendor-specific partition", "9846625A-FE09-425B-A08F-2BF5F1F8D838", OperatingSystemAndroid},
	{"ANDROID_23", "Android vendor-specific partition", "9846625A-FE09-425B-A08F-2BF5F1F8D839", OperatingSystemAndroid},
	{"ANDROID_24", "Android vendor-specific partition", "9846625A-FE09-425B-A08F-2BF5F1F8D83A", OperatingSystemAndroid},
	{"ANDROID_25", "Android vendor-specific partition", "9846625A-FE09-425B-A08F-2BF5F1F8D83B", OperatingSystemAndroid},
	{"ANDROID_26", "Android vendor-specific partition", "9846625A-FE09-425B-A08F-2BF5F1F8D83C", OperatingSystemAndroid},
	{"ANDROID_27", "Android vendor-specific partition", "9846625A-FE09-425B-A08F-2BF5F1F8D83D", OperatingSystemAndroid},
	{"ANDROID_28", "Android vendor-specific partition", "9846625A-FE09-425B-A08F-2BF5F1F8D83E", OperatingSystemAndroid},
	{"ANDROID_29", "Android vendor-specific partition", "9846625A-FE09-425B-A08F-2BF5F1F8D83F", OperatingSystemAndroid},
	{"ANDROID_30", "Android vendor-specific partition", "961743CA-BD08-48D5-BD8C-25EFEB7C7AC2", OperatingSystemAndroid},
	{"ANDROID_31", "Android vendor-specific partition", "CA98971A-A88F-4342-BC74-58D1B639B636", OperatingSystemAndroid},
	{"ANDROID_32", "Android vendor-specific partition", "D1E30BCB-7D78-4FB6-B598-55FC4892644C", OperatingSystemAndroid},
	{"ANDROID_33", "Android vendor-specific partition", "303E6AC3-AF15-4C54-9E9B-D9A8FBECF401", OperatingSystemAndroid},
	{"ANDROID_34", "Android vendor-specific partition", "65ADDCF4-0C5C-4D9A-AC2D-D90B5CBFCD03", OperatingSystemAndroid},
	{"ANDROID_35", "Android vendor-specific partition", "4114B077-005D-4E12-AC8C-B493BDA684FB", OperatingSystemAndroid},
	{"ANDROID_36", "Android vendor-specific partition", "E6E98DA2-E22A-4D12-AB33-169E7DEAA507", OperatingSystemAndroid},
	{"ANDROID_37", "Android vendor-specific partition", "ED9E8101-05FA-46B7-82AA-8D58770D200B", OperatingSystemAndroid},
	{"ANDROID_38", "Android vendor-specific partition", "E42E2B4C-33B0-429B-B1EF-D341C547022C", OperatingSystemAndroid},
	{"ANDROID_39", "Android vendor-specific partition", "AD99F201-DC71-4E30-9630-E19EEF553D1B", OperatingSystemAndroid},
	{"ANDROID_40", "Android vendor-specific partition", "10A0C19C-516A-5444-5CE3-664C3226A794", OperatingSystemAndroid},
	{"ANDROID_41", "Android vendor-specific partition", "97745ABA-135A-44C3-9ADC-05616173C24C", OperatingSystemAndroid},
	{"ANDROID_42", "Android vendor-specific partition", "BC0330EB-3410-4951-A617-03898DBE3372", OperatingSystemAndroid},
	{"ANDROID_43", "Android vendor-specific partition", "AA9A5C4C-4F1F-7D3A-014A-22BD33BF7191", OperatingSystemAndroid},
	{"ANDROID_44", "Android vendor-specific partition", "5AF80809-AABB-4943-9168-CDFC38742598", OperatingSystemAndroid},
	{"ANDROID_45", "Android vendor-specific partition", "17911177-C9E6-4372-933C-804B678E666F", OperatingSystemAndroid},
	{"ANDROID_46", "Android vendor-specific partition", "2C86E742-745E-4FDD-BFD8-B6A7AC638772", OperatingSystemAndroid},
	{"ANDROID_47", "Android vendor-specific partition", "6C95E238-E343-4BA8-B489-8681ED22AD0B", OperatingSystemAndroid},
	{"ANDROID_48", "Android vendor-specific partition", "82ACC91F-357C-4A68-9C8F-689E1B1A23A1", OperatingSystemAndroid},
	{"ANDROID_49", "Android vendor-specific partition", "6D679BAB-23C7-466E-90AC-A39897C15640", OperatingSystemAndroid},
	{"ANDROID_50", "Android vendor-specific partition", "DE7D4029-0F5B-41C8-AE7E-F6C023A02B33", OperatingSystemAndroid},
	{"ANDROID_51", "Android vendor-specific partition", "91B72D4D-71E0-4CBF-9B8E-236381CFF17A", OperatingSystemAndroid},
	{"ANDROID_52", "Android vendor-specific partition", "5594C694-C871-4B5F-90B1-690A6F68E0F7", OperatingSystemAndroid},
	{"ANDROID_53", "Android vendor-specific partition", "EBBEADAE-22C9-E33B-8F5D-0E81686A68CC", OperatingSystemAndroid},
	{"ANDROID_54", "Android vendor-specific partition", "0A288B1E-22C9-E33B-8F5D-0E81686A68CC", OperatingSystemAndroid},
	{"ANDROID_55", "Android vendor-specific partition", "004A6838-062A-44DF-8152-4F340C052255", OperatingSystemAndroid},
	{"ANDROID_56", "Android vendor-specific partition", "04377754-DE64-4ADB-852F-F01E702DF13B", OperatingSystemAndroid},
	{"ANDROID_57", "Android vendor-specific partition", "97D7B011-54DA-4835-B3C4-917AD6E73D74", OperatingSystemAndroid},
	{"ANDROID_58", "Android vendor-specific partition", "77036CD4-03D5-42BB-8ED1-37E5A88BAA34", OperatingSystemAndroid},
	{"ANDROID_59", "Android vendor-specific partition", "E4B6514E-2577-495D-A484-1A0C460C6101", OperatingSystemAndroid},
	{"ANDROID_60", "Android vendor-specific partition", "1B81E7E6-F50D-419B-A739-2AEEF8DA3335", OperatingSystemAndroid},
	{"ANDROID_61", "Android vendor-specific partition", "DEA0BA2C-CBDD-4805-B4F9-F428251C3E98", OperatingSystemAndroid},
	{"ANDROID_62", "Android vendor-specific partition", "5A325AE4-4276-B66D-0ADD-3494DF27706A", OperatingSystemAndroid},
	{"ANDROID_63", "Android vendor-specific partition", "6891A3B7-0CCC-4705-BB53-2673CAC193BD", OperatingSystemAndroid},
	{"ANDROID_64", "Android vendor-specific partition", "EBBEADAF-22C9-E33B-8F5D-0E81686A68CB", OperatingSystemAndroid},
	{"ANDROID_65", "Android vendor-specific partition", "0A288B1F-22C9-E33B-8F5D-0E81686A68CB", OperatingSystemAndroid},
	{"ANDROID_66", "Android vendor-specific partition", "638FF8E2-22C9-E33B-8F5D-0E81686A68CB", OperatingSystemAndroid},
	{"ANDROID_67", "Android vendor-specific partition", "57B90A16-22C9-E33B-8F5D-0E81686A68CB", OperatingSystemAndroid},
}
