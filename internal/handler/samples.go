package handler

// Sample transcripts served to the frontend's quick-start picker.
var sampleTranscripts = []SampleResponse{
	{
		Name:       "Billing Confusion",
		Transcript: "Hello, I'm calling about my monthly bill. I usually pay around $45 but this month it's $78 and I don't understand why. I didn't use any extra services or change my plan. Can you help me figure out what these additional charges are for? I'm not angry, just really confused about what happened.",
	},
	{
		Name:       "Tech Support Anxiety",
		Transcript: "Hi, my laptop has been running extremely slow for the past week and now it's not starting up properly. I have an important presentation tomorrow and all my files are on this computer. I'm really worried I might lose everything. Can you please help me fix this quickly?",
	},
	{
		Name:       "Product Return",
		Transcript: "I ordered a wireless headset last week expecting premium quality based on your website description, but the sound quality is terrible and it keeps disconnecting from my phone. This is really disappointing because I specifically chose your brand based on the reviews. I'd like to return this and get a full refund please.",
	},
	{
		Name:       "Account Access",
		Transcript: "Good morning, I'm trying to log into my online account but I can't remember my password. I've tried the password reset option but I'm not receiving the email. Could you help me reset my password or check if there's an issue with my email address on file?",
	},
	{
		Name:       "Delivery Delay",
		Transcript: "This is ridiculous! I paid extra for express shipping and my package was supposed to arrive three days ago. I need these items for my daughter's birthday party this weekend. Every time I track the package it just says 'in transit' with no real updates. Where is my order and when will it actually arrive?",
	},
}
